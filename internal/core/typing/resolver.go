// Package typing works out which classes each individual belongs to, from
// rdf:type edges, from owl:oneOf enumerations, and, when no edge was drawn,
// from the individual being drawn against a concept box.
package typing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agenthands/sketchont/internal/core/geometry"
	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/agenthands/sketchont/internal/logger"
)

var (
	// OWLConvention: the individual's top-left corner touches the concept's
	// top-right corner.
	OWLConvention = geometry.Convention{Child: geometry.TopLeft, Parent: geometry.TopRight}
	// RDFConvention: the individual's top-left corner touches the concept's
	// bottom-right corner.
	RDFConvention = geometry.Convention{Child: geometry.TopLeft, Parent: geometry.BottomRight}
)

type Resolver struct {
	Convention geometry.Convention
	Tolerance  float64
	Log        *logger.Logger
}

func NewResolver(convention geometry.Convention, tolerance float64, log *logger.Logger) *Resolver {
	if tolerance <= 0 {
		tolerance = geometry.DefaultTolerance
	}
	return &Resolver{
		Convention: convention,
		Tolerance:  tolerance,
		Log:        logger.OrNop(log),
	}
}

// Stats counts the types appended by each inference path.
type Stats struct {
	Explicit   int
	Enumerated int
	Adjacent   int
}

// Resolve appends class names to Individual.Type. Existing entries are never
// removed. Problems with enumerations are reported to diags.
func (r *Resolver) Resolve(
	individuals *model.Collection[*model.Individual],
	associations *model.ConceptAssociations,
	relations *model.Collection[*model.Relation],
	hexagons *model.Collection[*model.Hexagon],
	diags *model.Diagnostics,
) Stats {
	var stats Stats
	typed := make(map[string]bool)

	for _, relation := range relations.All() {
		if relation.Type != model.TermType || !relation.Connected() {
			continue
		}
		individual, ok := individuals.Get(relation.Source)
		if !ok {
			continue
		}
		typed[individual.ID] = true

		if hexagon, ok := hexagons.Get(relation.Target); ok {
			if hexagon.Type == model.TermOneOf && r.enumerate(individual, hexagon, individuals, diags) {
				stats.Enumerated++
			}
			continue
		}

		owner, ok := model.FindOwner(associations, relation.Target)
		if !ok {
			r.Log.Debug("rdf:type target not resolved", "relation", relation.ID, "target", relation.Target)
			continue
		}
		individual.Type = append(individual.Type, owner.Concept.Name())
		stats.Explicit++
	}

	for _, individual := range individuals.All() {
		if typed[individual.ID] || individual.Geometry == nil {
			continue
		}
		if concept, ok := r.adjacentConcept(individual, associations); ok {
			individual.Type = append(individual.Type, concept.Name())
			stats.Adjacent++
		}
	}
	return stats
}

// enumerate appends the anonymous oneOf class when the individual is one of
// its members.
func (r *Resolver) enumerate(individual *model.Individual, hexagon *model.Hexagon, individuals *model.Collection[*model.Individual], diags *model.Diagnostics) bool {
	members := make([]string, 0, len(hexagon.Group))
	for _, id := range hexagon.Group {
		member, ok := individuals.Get(id)
		if !ok {
			diags.Add(model.CheckOneOf, model.Diagnostic{
				Message: "An element of owl:oneOf is not an individual",
				ShapeID: id,
			})
			continue
		}
		members = append(members, member.Name())
	}

	name := individual.Name()
	if !slices.Contains(members, name) {
		diags.Add(model.CheckOneOfIndividual, model.Diagnostic{
			Message: fmt.Sprintf("%s not in owl:oneOf", name),
			ShapeID: individual.ID,
			Value:   name,
		})
		return false
	}

	individual.Type = append(individual.Type, OneOfExpression(members))
	return true
}

func (r *Resolver) adjacentConcept(individual *model.Individual, associations *model.ConceptAssociations) (*model.Concept, bool) {
	for _, association := range associations.All() {
		concept := association.Concept
		if concept.Geometry == nil {
			continue
		}
		if r.Convention.Attached(*individual.Geometry, *concept.Geometry, r.Tolerance) {
			return concept, true
		}
	}
	return nil, false
}

// OneOfExpression renders the anonymous enumerated class used as a type.
func OneOfExpression(members []string) string {
	var sb strings.Builder
	sb.WriteString("[ rdf:type owl:Class ; owl:oneOf (")
	for _, member := range members {
		sb.WriteString(" ")
		sb.WriteString(member)
	}
	sb.WriteString(" ) ]")
	return sb.String()
}
