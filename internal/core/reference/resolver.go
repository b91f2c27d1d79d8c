// Package reference re-anchors attribute blocks that point at another
// attribute block instead of at their concept. This happens when a concept
// has two stacked blocks: the lower one is drawn attached to the upper one.
package reference

import (
	"github.com/agenthands/sketchont/internal/core/model"
)

type Resolver struct {
	// MaxHops bounds how many block-to-block references are followed.
	// Zero follows the whole chain. One reproduces the single-hop rewrite,
	// which may leave a block pointing at another block.
	MaxHops int
}

func NewResolver(maxHops int) *Resolver {
	return &Resolver{MaxHops: maxHops}
}

// Resolve rewrites ConceptAssociated, and every attribute domain that is set,
// on blocks whose owner is another block. Unresolvable references are left
// untouched. It returns the number of blocks rewritten.
func (r *Resolver) Resolve(blocks *model.Collection[*model.AttributeBlock], concepts *model.Collection[*model.Concept]) int {
	rewritten := 0
	for _, block := range blocks.All() {
		source := block.ConceptAssociated
		if source == "" || concepts.Has(source) || !blocks.Has(source) {
			continue
		}

		owner, ok := r.owner(blocks, concepts, source)
		if !ok {
			continue
		}

		block.ConceptAssociated = owner
		for _, attribute := range block.Attributes {
			if attribute.Domain.IsSet() {
				attribute.Domain = model.Ref(owner)
			}
		}
		rewritten++
	}
	return rewritten
}

func (r *Resolver) owner(blocks *model.Collection[*model.AttributeBlock], concepts *model.Collection[*model.Concept], start string) (string, bool) {
	visited := make(map[string]bool)
	current := start
	for hops := 0; ; hops++ {
		if concepts.Has(current) {
			return current, true
		}
		block, ok := blocks.Get(current)
		if !ok || visited[current] {
			return "", false
		}
		if r.MaxHops > 0 && hops == r.MaxHops {
			return current, true
		}
		visited[current] = true
		current = block.ConceptAssociated
	}
}
