package model

// Relation is a directed edge. Source and Target are empty when the edge has
// no endpoint; after concept association they name a Concept or an Individual
// rather than an attribute block.
type Relation struct {
	ID       string    `json:"id" yaml:"id"`
	Source   string    `json:"source" yaml:"source"`
	Target   string    `json:"target" yaml:"target"`
	Type     Term      `json:"type" yaml:"type"`
	Prefix   string    `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	URI      string    `json:"uri,omitempty" yaml:"uri,omitempty"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`

	Domain Ref `json:"domain" yaml:"domain"`
	Range  Ref `json:"range" yaml:"range"`

	SubPropertyOf      string `json:"subPropertyOf,omitempty" yaml:"subPropertyOf,omitempty"`
	InverseOf          string `json:"inverseOf,omitempty" yaml:"inverseOf,omitempty"`
	EquivalentProperty string `json:"equivalentProperty,omitempty" yaml:"equivalentProperty,omitempty"`

	Functional        bool `json:"functional" yaml:"functional"`
	InverseFunctional bool `json:"inverse_functional" yaml:"inverse_functional"`
	Transitive        bool `json:"transitive" yaml:"transitive"`
	Symmetric         bool `json:"symmetric" yaml:"symmetric"`
}

func (r *Relation) ElementID() string { return r.ID }
func (r *Relation) Name() string      { return QName(r.Prefix, r.URI) }

// Named reports whether the relation carries a property name.
func (r *Relation) Named() bool { return r.URI != "" }

// Connected reports whether both endpoints are set.
func (r *Relation) Connected() bool { return r.Source != "" && r.Target != "" }
