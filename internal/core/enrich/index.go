package enrich

import (
	"github.com/agenthands/sketchont/internal/core/model"
)

// AttributeHandle locates one attribute inside its block.
type AttributeHandle struct {
	Block *model.AttributeBlock
	Index int
}

func (h AttributeHandle) Attribute() *model.Attribute {
	return h.Block.Attributes[h.Index]
}

// PropertyIndex joins property names to the records that carry them. It is
// built once per run; rhombuses are matched to properties only by name.
// A name drawn several times maps to every record carrying it.
type PropertyIndex struct {
	relations  map[string][]*model.Relation
	attributes map[string][]AttributeHandle
}

func NewPropertyIndex(relations *model.Collection[*model.Relation], blocks *model.Collection[*model.AttributeBlock]) *PropertyIndex {
	ix := &PropertyIndex{
		relations:  make(map[string][]*model.Relation),
		attributes: make(map[string][]AttributeHandle),
	}
	for _, relation := range relations.All() {
		if relation.Named() {
			ix.RegisterRelation(relation)
		}
	}
	for _, block := range blocks.All() {
		for i, attribute := range block.Attributes {
			name := attribute.Name()
			ix.attributes[name] = append(ix.attributes[name], AttributeHandle{Block: block, Index: i})
		}
	}
	return ix
}

func (ix *PropertyIndex) RegisterRelation(relation *model.Relation) {
	name := relation.Name()
	ix.relations[name] = append(ix.relations[name], relation)
}

func (ix *PropertyIndex) Relations(name string) []*model.Relation {
	return ix.relations[name]
}

func (ix *PropertyIndex) Attributes(name string) []*model.Attribute {
	handles := ix.attributes[name]
	out := make([]*model.Attribute, 0, len(handles))
	for _, h := range handles {
		out = append(out, h.Attribute())
	}
	return out
}

func (ix *PropertyIndex) AttributeHandles(name string) []AttributeHandle {
	return ix.attributes[name]
}
