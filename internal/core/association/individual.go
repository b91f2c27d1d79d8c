package association

import (
	"github.com/agenthands/sketchont/internal/core/model"
)

// IndividualRelations builds one association per individual holding its
// outgoing object property edges towards other individuals. sameAs and
// differentFrom edges are included and relabelled with their owl names.
func IndividualRelations(individuals *model.Collection[*model.Individual], relations *model.Collection[*model.Relation]) *model.IndividualAssociations {
	associations := model.NewCollection[*model.IndividualAssociation]()
	for _, individual := range individuals.All() {
		associations.Put(&model.IndividualAssociation{Individual: individual})
	}

	for _, relation := range relations.All() {
		switch relation.Type {
		case model.TermObjectProperty, model.TermSameAs, model.TermDifferentFrom:
		default:
			continue
		}

		association, ok := associations.Get(relation.Source)
		if !ok || !individuals.Has(relation.Target) {
			continue
		}

		switch relation.Type {
		case model.TermSameAs:
			relation.Prefix, relation.URI = "owl", "sameAs"
		case model.TermDifferentFrom:
			relation.Prefix, relation.URI = "owl", "differentFrom"
		}
		association.Relations.Put(relation)
	}
	return associations
}

// IndividualAttributes files every edge from an individual to a literal value
// as a datatype property of that individual, retagging the edge.
func IndividualAttributes(associations *model.IndividualAssociations, values *model.Collection[*model.Value], relations *model.Collection[*model.Relation]) int {
	filed := 0
	for _, relation := range relations.All() {
		if !values.Has(relation.Target) {
			continue
		}
		association, ok := associations.Get(relation.Source)
		if !ok {
			continue
		}
		relation.Type = model.TermDatatypeProperty
		association.Attributes.Put(relation)
		filed++
	}
	return filed
}
