package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/agenthands/sketchont/internal/driver"
)

var ErrNoDriver = errors.New("no graph driver configured")

// Publish writes a resolved ontology to the graph store under the run id.
// Writes are idempotent, so a failed publish can be retried.
func (e *Engine) Publish(ctx context.Context, res *Result) (err error) {
	if e.Driver == nil {
		return ErrNoDriver
	}
	if res == nil || res.Diagram == nil {
		return ErrNilDiagram
	}
	defer func() { e.Metrics.ObservePublish(err) }()

	p := &publisher{driver: e.Driver, graphID: res.RunID}
	if err := p.publish(ctx, res); err != nil {
		e.Log.Error("publish failed", "run_id", res.RunID, "error", err)
		return err
	}
	e.Log.Info("published", "run_id", res.RunID, "statements", p.statements)
	return nil
}

// Unpublish removes everything written for a run.
func (e *Engine) Unpublish(ctx context.Context, runID string) error {
	if e.Driver == nil {
		return ErrNoDriver
	}
	_, err := e.Driver.ExecuteQuery(ctx, driver.DeleteGraphQuery, map[string]any{"graph_id": runID})
	if err != nil {
		return fmt.Errorf("failed to delete graph %s: %w", runID, err)
	}
	return nil
}

type publisher struct {
	driver     driver.GraphDriver
	graphID    string
	statements int
}

func (p *publisher) exec(ctx context.Context, query string, params map[string]any) error {
	params["graph_id"] = p.graphID
	if _, err := p.driver.ExecuteQuery(ctx, query, params); err != nil {
		return err
	}
	p.statements++
	return nil
}

func (p *publisher) publish(ctx context.Context, res *Result) error {
	d := res.Diagram

	for id, concept := range d.Concepts.All() {
		if err := p.exec(ctx, driver.SaveClassQuery, map[string]any{"id": id, "name": concept.Name()}); err != nil {
			return fmt.Errorf("failed to save class %s: %w", id, err)
		}
	}

	for id, relation := range d.Relations.All() {
		query, ok := propertyQuery(relation.Type)
		if !ok || !relation.Named() {
			continue
		}
		params := relationParams(relation)
		if err := p.exec(ctx, query, params); err != nil {
			return fmt.Errorf("failed to save property %s: %w", id, err)
		}
		if err := p.link(ctx, d, id, domainOf(relation), rangeOf(relation)); err != nil {
			return err
		}
	}

	if res.Concepts != nil {
		for classID, association := range res.Concepts.All() {
			for blockID, block := range association.AttributeBlocks.All() {
				for i, attribute := range block.Attributes {
					id := fmt.Sprintf("%s/%d", blockID, i)
					if err := p.exec(ctx, driver.SaveDatatypePropertyQuery, attributeParams(id, attribute)); err != nil {
						return fmt.Errorf("failed to save attribute %s: %w", id, err)
					}
					if err := p.exec(ctx, driver.SaveHasAttributeEdgeQuery, map[string]any{"class_id": classID, "property_id": id}); err != nil {
						return fmt.Errorf("failed to link attribute %s: %w", id, err)
					}
					if err := p.link(ctx, d, id, attribute.Domain.String(), ""); err != nil {
						return err
					}
				}
			}
		}
	}

	for id, individual := range d.Individuals.All() {
		types := individual.Type
		if types == nil {
			types = []string{}
		}
		if err := p.exec(ctx, driver.SaveIndividualQuery, map[string]any{"id": id, "name": individual.Name(), "types": types}); err != nil {
			return fmt.Errorf("failed to save individual %s: %w", id, err)
		}
		for _, class := range individual.Type {
			if err := p.exec(ctx, driver.SaveInstanceOfEdgeQuery, map[string]any{"individual_id": id, "class_name": class}); err != nil {
				return fmt.Errorf("failed to type individual %s: %w", id, err)
			}
		}
	}

	if res.Individuals == nil {
		return nil
	}
	for id, association := range res.Individuals.All() {
		for relationID, relation := range association.Relations.All() {
			params := map[string]any{
				"id":        relationID,
				"source_id": id,
				"target_id": relation.Target,
				"name":      relation.Name(),
				"kind":      string(relation.Type),
			}
			if err := p.exec(ctx, driver.SaveRelatesToEdgeQuery, params); err != nil {
				return fmt.Errorf("failed to relate individual %s: %w", id, err)
			}
		}
		for relationID, relation := range association.Attributes.All() {
			params := map[string]any{
				"id":            relationID,
				"individual_id": id,
				"value_id":      relation.Target,
				"name":          relation.Name(),
			}
			if err := p.exec(ctx, driver.SaveValueAttributeEdgeQuery, params); err != nil {
				return fmt.Errorf("failed to save value of individual %s: %w", id, err)
			}
		}
	}
	return nil
}

// link writes DOMAIN and RANGE edges towards classes. References to
// anything but a concept are skipped.
func (p *publisher) link(ctx context.Context, d *model.Diagram, propertyID, domain, rng string) error {
	if d.Concepts.Has(domain) {
		if err := p.exec(ctx, driver.SaveDomainEdgeQuery, map[string]any{"property_id": propertyID, "class_id": domain}); err != nil {
			return fmt.Errorf("failed to save domain of %s: %w", propertyID, err)
		}
	}
	if d.Concepts.Has(rng) {
		if err := p.exec(ctx, driver.SaveRangeEdgeQuery, map[string]any{"property_id": propertyID, "class_id": rng}); err != nil {
			return fmt.Errorf("failed to save range of %s: %w", propertyID, err)
		}
	}
	return nil
}

func propertyQuery(kind model.Term) (string, bool) {
	switch kind {
	case model.TermObjectProperty:
		return driver.SaveObjectPropertyQuery, true
	case model.TermDatatypeProperty:
		return driver.SaveDatatypePropertyQuery, true
	case model.TermFunctionalProperty:
		return driver.SavePropertyQuery, true
	}
	return "", false
}

// domainOf prefers an explicit domain annotation over the drawn source.
func domainOf(relation *model.Relation) string {
	if relation.Domain.IsSet() {
		return relation.Domain.String()
	}
	return relation.Source
}

func rangeOf(relation *model.Relation) string {
	if relation.Range.IsSet() {
		return relation.Range.String()
	}
	if relation.Type == model.TermObjectProperty {
		return relation.Target
	}
	return ""
}

func relationParams(relation *model.Relation) map[string]any {
	return map[string]any{
		"id":                  relation.ID,
		"name":                relation.Name(),
		"kind":                string(relation.Type),
		"functional":          relation.Functional,
		"inverse_functional":  relation.InverseFunctional,
		"transitive":          relation.Transitive,
		"symmetric":           relation.Symmetric,
		"sub_property_of":     relation.SubPropertyOf,
		"inverse_of":          relation.InverseOf,
		"equivalent_property": relation.EquivalentProperty,
		"datatype":            "",
	}
}

func attributeParams(id string, attribute *model.Attribute) map[string]any {
	datatype := ""
	if attribute.Range {
		datatype = model.QName(attribute.PrefixDatatype, attribute.Datatype)
	}
	return map[string]any{
		"id":                  id,
		"name":                attribute.Name(),
		"kind":                string(model.TermDatatypeProperty),
		"functional":          attribute.Functional,
		"inverse_functional":  false,
		"transitive":          false,
		"symmetric":           false,
		"sub_property_of":     attribute.SubPropertyOf,
		"inverse_of":          attribute.InverseOf,
		"equivalent_property": attribute.EquivalentProperty,
		"datatype":            datatype,
	}
}
