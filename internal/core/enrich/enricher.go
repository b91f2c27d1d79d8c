// Package enrich folds property characteristic markers (rhombuses) and the
// domain, range and property-to-property edges drawn from them into the
// relation and attribute records they name.
package enrich

import (
	"errors"

	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/agenthands/sketchont/internal/logger"
)

const (
	DefaultDatatypePrefix = "xsd"
	// DefaultPlaceholderPrefix is what the diagram parser emits for a name
	// drawn without a prefix.
	DefaultPlaceholderPrefix = "<cambiar_a_base"
)

type Options struct {
	// DatatypePrefix replaces a missing or placeholder prefix on datatypes
	// recovered from mis-parsed concept boxes.
	DatatypePrefix    string
	PlaceholderPrefix string
}

func DefaultOptions() Options {
	return Options{
		DatatypePrefix:    DefaultDatatypePrefix,
		PlaceholderPrefix: DefaultPlaceholderPrefix,
	}
}

type Enricher struct {
	Options Options
	Log     *logger.Logger
}

func NewEnricher(opts Options, log *logger.Logger) *Enricher {
	if opts.DatatypePrefix == "" {
		opts.DatatypePrefix = DefaultDatatypePrefix
	}
	if opts.PlaceholderPrefix == "" {
		opts.PlaceholderPrefix = DefaultPlaceholderPrefix
	}
	return &Enricher{Options: opts, Log: logger.OrNop(log)}
}

type Stats struct {
	Annotated    int
	Flagged      int
	Synthesized  int
	Reclassified int
	Rejected     int
}

// run carries the state of one enrichment over one diagram.
type run struct {
	*Enricher
	diagram *model.Diagram
	index   *PropertyIndex
	stats   Stats
}

// Enrich runs the annotation pass, then the characteristic pass, over d.
// Relations may be added to d.Relations and concepts that turn out to be
// datatypes are removed from d.Concepts. Every rejected rhombus is reported
// to diags and processing continues with the next one.
func (e *Enricher) Enrich(d *model.Diagram, diags *model.Diagnostics) Stats {
	r := &run{
		Enricher: e,
		diagram:  d,
		index:    NewPropertyIndex(&d.Relations, &d.AttributeBlocks),
	}

	for _, relation := range d.Relations.All() {
		if !relation.Type.Annotation() || !relation.Connected() {
			continue
		}
		rhombus, ok := d.Rhombuses.Get(relation.Source)
		if !ok {
			continue
		}
		r.report(rhombus, r.annotate(rhombus, relation), diags)
	}

	for _, rhombus := range d.Rhombuses.All() {
		r.report(rhombus, r.characterize(rhombus), diags)
	}
	return r.stats
}

func (r *run) report(rhombus *model.Rhombus, err error, diags *model.Diagnostics) {
	if err == nil {
		return
	}
	r.stats.Rejected++
	r.Log.Warn("rhombus rejected", "rhombus", rhombus.ID, "error", err)

	var d diagnoser
	if errors.As(err, &d) {
		diags.Add(model.CheckRhombuses, d.Diagnostic())
		return
	}
	diags.Add(model.CheckRhombuses, model.Diagnostic{Message: err.Error(), ShapeID: rhombus.ID})
}

// objectProperties returns the relations named by rhombus, creating an object
// property record when none was drawn.
func (r *run) objectProperties(rhombus *model.Rhombus) []*model.Relation {
	if relations := r.index.Relations(rhombus.Name()); len(relations) > 0 {
		return relations
	}
	return []*model.Relation{r.synthesize(rhombus, model.TermObjectProperty)}
}

// synthesize creates and registers a property record for a rhombus whose
// property was never drawn as an edge.
func (r *run) synthesize(rhombus *model.Rhombus, kind model.Term) *model.Relation {
	relation := &model.Relation{
		ID:     rhombus.ID,
		Type:   kind,
		Prefix: rhombus.Prefix,
		URI:    rhombus.URI,
	}
	if rhombus.Geometry != nil {
		g := *rhombus.Geometry
		relation.Geometry = &g
	}
	r.diagram.Relations.Put(relation)
	r.index.RegisterRelation(relation)
	r.stats.Synthesized++
	r.Log.Debug("property synthesized from rhombus", "rhombus", rhombus.ID, "property", relation.Name(), "type", kind)
	return relation
}
