package model

// Term is a qualified vocabulary name used as a type tag on relations,
// rhombuses and hexagons.
type Term string

// Relation and rhombus type tags.
const (
	TermObjectProperty   Term = "owl:ObjectProperty"
	TermDatatypeProperty Term = "owl:DatatypeProperty"
	// TermFunctionalProperty marks a property that is known to be functional
	// but not yet known to be an object or a datatype property.
	TermFunctionalProperty        Term = "owl:FunctionalProperty"
	TermInverseFunctionalProperty Term = "owl:InverseFunctionalProperty"
	TermTransitiveProperty        Term = "owl:TransitiveProperty"
	TermSymmetricProperty         Term = "owl:SymmetricProperty"

	TermType               Term = "rdf:type"
	TermSameAs             Term = "owl:sameAs"
	TermDifferentFrom      Term = "owl:differentFrom"
	TermDomain             Term = "rdfs:domain"
	TermRange              Term = "rdfs:range"
	TermSubPropertyOf      Term = "rdfs:subPropertyOf"
	TermInverseOf          Term = "owl:inverseOf"
	TermEquivalentProperty Term = "owl:equivalentProperty"

	// TermConnector tags purely structural edges between shapes.
	TermConnector Term = "ellipse_connection"
)

// Hexagon kinds.
const (
	TermOneOf Term = "owl:oneOf"
)

// Annotation reports whether t is one of the property-to-property or
// property-to-class edges folded into property records by enrichment.
func (t Term) Annotation() bool {
	switch t {
	case TermSubPropertyOf, TermInverseOf, TermEquivalentProperty, TermDomain, TermRange:
		return true
	}
	return false
}

// Structural reports whether edges of this type are skipped when filing
// relations under concepts.
func (t Term) Structural() bool {
	return t == TermConnector || t == TermDomain || t == TermRange
}

// QName joins a prefix and a local name.
func QName(prefix, uri string) string {
	return prefix + ":" + uri
}
