// Package association groups shapes around the concept or individual that
// owns them.
package association

import (
	"github.com/agenthands/sketchont/internal/core/model"
)

// ConceptAttributes builds one association per concept and files every
// attribute block under its owning concept. Blocks whose owner is not a
// known concept are dropped.
func ConceptAttributes(concepts *model.Collection[*model.Concept], blocks *model.Collection[*model.AttributeBlock]) *model.ConceptAssociations {
	associations := model.NewCollection[*model.ConceptAssociation]()
	for _, concept := range concepts.All() {
		associations.Put(&model.ConceptAssociation{Concept: concept})
	}

	for _, block := range blocks.All() {
		if association, ok := associations.Get(block.ConceptAssociated); ok {
			association.AttributeBlocks.Put(block)
		}
	}
	return associations
}

// RelationStats counts what ConceptRelations did.
type RelationStats struct {
	Filed   int
	Unfiled int
}

// ConceptRelations files relations under the concept owning their source and
// rewrites each endpoint that names a concept or one of its attribute blocks
// to the concept id. Source and target are resolved independently; the first
// owning concept in concept order wins. Endpoints that match nothing keep
// their original id.
func ConceptRelations(associations *model.ConceptAssociations, relations *model.Collection[*model.Relation]) RelationStats {
	var stats RelationStats
	for _, relation := range relations.All() {
		if relation.Type.Structural() || !relation.Connected() {
			continue
		}

		if owner, ok := model.FindOwner(associations, relation.Source); ok {
			relation.Source = owner.Concept.ID
			owner.Relations.Put(relation)
			stats.Filed++
		} else {
			stats.Unfiled++
		}

		if owner, ok := model.FindOwner(associations, relation.Target); ok {
			relation.Target = owner.Concept.ID
		}
	}
	return stats
}
