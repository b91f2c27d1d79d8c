package model

// Diagram holds the shape collections produced by the diagram parser.
// Element order inside each collection is the diagram's own order.
type Diagram struct {
	Concepts        Collection[*Concept]        `json:"concepts" yaml:"concepts"`
	AttributeBlocks Collection[*AttributeBlock] `json:"attribute_blocks" yaml:"attribute_blocks"`
	Relations       Collection[*Relation]       `json:"relations" yaml:"relations"`
	Rhombuses       Collection[*Rhombus]        `json:"rhombuses" yaml:"rhombuses"`
	Individuals     Collection[*Individual]     `json:"individuals" yaml:"individuals"`
	Hexagons        Collection[*Hexagon]        `json:"hexagons" yaml:"hexagons"`
	Values          Collection[*Value]          `json:"values" yaml:"values"`
}

// ConceptAssociation gathers a concept with the attribute blocks and
// relations attached to it.
type ConceptAssociation struct {
	Concept         *Concept                    `json:"concept"`
	AttributeBlocks Collection[*AttributeBlock] `json:"attribute_blocks"`
	Relations       Collection[*Relation]       `json:"relations"`
}

func (a *ConceptAssociation) ElementID() string { return a.Concept.ID }

// Owns reports whether id is the concept itself or one of its attribute blocks.
func (a *ConceptAssociation) Owns(id string) bool {
	return id == a.Concept.ID || a.AttributeBlocks.Has(id)
}

// IndividualAssociation gathers an individual's outgoing object property
// edges (Relations) and datatype property edges (Attributes).
type IndividualAssociation struct {
	Individual *Individual           `json:"individual"`
	Relations  Collection[*Relation] `json:"relations"`
	Attributes Collection[*Relation] `json:"attributes"`
}

func (a *IndividualAssociation) ElementID() string { return a.Individual.ID }

type ConceptAssociations = Collection[*ConceptAssociation]
type IndividualAssociations = Collection[*IndividualAssociation]

// FindOwner returns the first association owning id, in concept order.
func FindOwner(associations *ConceptAssociations, id string) (*ConceptAssociation, bool) {
	if id == "" {
		return nil, false
	}
	for _, association := range associations.All() {
		if association.Owns(id) {
			return association, true
		}
	}
	return nil, false
}
