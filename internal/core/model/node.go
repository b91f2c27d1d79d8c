package model

// Geometry is the bounding box of a drawn shape, in diagram units.
type Geometry struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type Concept struct {
	ID       string    `json:"id" yaml:"id"`
	Prefix   string    `json:"prefix" yaml:"prefix"`
	URI      string    `json:"uri" yaml:"uri"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

func (c *Concept) ElementID() string { return c.ID }
func (c *Concept) Name() string      { return QName(c.Prefix, c.URI) }

// Attribute is one datatype-valued field inside an AttributeBlock.
type Attribute struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	URI    string `json:"uri" yaml:"uri"`
	Domain Ref    `json:"domain" yaml:"domain"`
	// Range is true once the attribute has an explicit datatype range.
	Range          bool   `json:"range" yaml:"range"`
	Datatype       string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	PrefixDatatype string `json:"prefix_datatype,omitempty" yaml:"prefix_datatype,omitempty"`
	Functional     bool   `json:"functional" yaml:"functional"`

	SubPropertyOf      string `json:"subPropertyOf,omitempty" yaml:"subPropertyOf,omitempty"`
	InverseOf          string `json:"inverseOf,omitempty" yaml:"inverseOf,omitempty"`
	EquivalentProperty string `json:"equivalentProperty,omitempty" yaml:"equivalentProperty,omitempty"`
}

func (a *Attribute) Name() string { return QName(a.Prefix, a.URI) }

// AttributeBlock is a drawn list of attributes. ConceptAssociated names the
// owning concept, or, before reference resolution, possibly another block.
type AttributeBlock struct {
	ID                string       `json:"id" yaml:"id"`
	Attributes        []*Attribute `json:"attributes" yaml:"attributes"`
	ConceptAssociated string       `json:"concept_associated,omitempty" yaml:"concept_associated,omitempty"`
	Geometry          *Geometry    `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

func (b *AttributeBlock) ElementID() string { return b.ID }

// Rhombus is a property characteristic marker, matched to properties by name.
type Rhombus struct {
	ID       string    `json:"id" yaml:"id"`
	Prefix   string    `json:"prefix" yaml:"prefix"`
	URI      string    `json:"uri" yaml:"uri"`
	Type     Term      `json:"type" yaml:"type"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

func (r *Rhombus) ElementID() string { return r.ID }
func (r *Rhombus) Name() string      { return QName(r.Prefix, r.URI) }

type Individual struct {
	ID       string    `json:"id" yaml:"id"`
	Prefix   string    `json:"prefix" yaml:"prefix"`
	URI      string    `json:"uri" yaml:"uri"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	// Type holds class names in inference order. Duplicates are kept.
	Type []string `json:"type" yaml:"type"`
}

func (i *Individual) ElementID() string { return i.ID }
func (i *Individual) Name() string      { return QName(i.Prefix, i.URI) }

// Hexagon is an anonymous class expression; Group lists member shape ids.
type Hexagon struct {
	ID       string    `json:"id" yaml:"id"`
	Type     Term      `json:"type" yaml:"type"`
	Group    []string  `json:"group" yaml:"group"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

func (h *Hexagon) ElementID() string { return h.ID }

// Value is a literal anchor; edges pointing at one are datatype properties.
type Value struct {
	ID       string    `json:"id" yaml:"id"`
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
}

func (v *Value) ElementID() string { return v.ID }
