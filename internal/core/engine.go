package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/sketchont/internal/config"
	"github.com/agenthands/sketchont/internal/core/association"
	"github.com/agenthands/sketchont/internal/core/enrich"
	"github.com/agenthands/sketchont/internal/core/geometry"
	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/agenthands/sketchont/internal/core/reference"
	"github.com/agenthands/sketchont/internal/core/typing"
	"github.com/agenthands/sketchont/internal/driver"
	"github.com/agenthands/sketchont/internal/logger"
	"github.com/agenthands/sketchont/internal/metrics"
)

// Mode selects the diagram convention a run follows.
type Mode string

const (
	ModeOWL Mode = "owl"
	ModeRDF Mode = "rdf"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOWL, "":
		return ModeOWL, nil
	case ModeRDF:
		return ModeRDF, nil
	}
	return "", fmt.Errorf("unknown mode '%s', want owl or rdf", s)
}

var ErrNilDiagram = errors.New("diagram is nil")

type Options struct {
	// ReferenceHops bounds block-to-block reference chains, 0 for no bound.
	ReferenceHops      int
	AdjacencyTolerance float64
	Enrich             enrich.Options
}

func DefaultOptions() Options {
	return Options{
		AdjacencyTolerance: geometry.DefaultTolerance,
		Enrich:             enrich.DefaultOptions(),
	}
}

// OptionsFrom maps the [resolution] configuration section onto engine options.
func OptionsFrom(cfg config.ResolutionConfig) Options {
	return Options{
		ReferenceHops:      cfg.ReferenceHops,
		AdjacencyTolerance: cfg.AdjacencyTolerance,
		Enrich: enrich.Options{
			DatatypePrefix:    cfg.DefaultDatatypePrefix,
			PlaceholderPrefix: cfg.PlaceholderPrefix,
		},
	}
}

type Engine struct {
	Options Options
	Log     *logger.Logger
	Metrics *metrics.Metrics
	// Driver is only needed by Publish.
	Driver driver.GraphDriver
}

func NewEngine(opts Options, log *logger.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		Options: opts,
		Log:     logger.OrNop(log),
		Metrics: m,
	}
}

// Stats summarizes what each stage did during a run.
type Stats struct {
	BlocksReanchored int                       `json:"blocks_reanchored"`
	Relations        association.RelationStats `json:"relations"`
	Typing           typing.Stats              `json:"typing"`
	Enrichment       enrich.Stats              `json:"enrichment"`
	ConceptsPruned   int                       `json:"concepts_pruned"`
	ValueEdges       int                       `json:"value_edges"`
}

type Result struct {
	RunID       string                        `json:"run_id"`
	Mode        Mode                          `json:"mode"`
	Diagram     *model.Diagram                `json:"diagram"`
	Concepts    *model.ConceptAssociations    `json:"concepts"`
	Individuals *model.IndividualAssociations `json:"individuals,omitempty"`
	Errors      *model.Diagnostics            `json:"errors"`
	Stats       Stats                         `json:"stats"`
}

// Resolve runs the pipeline for mode over d, mutating d in place. The engine
// owns d until Resolve returns. Modeling problems are reported in
// Result.Errors; the returned error is only set for unusable input.
func (e *Engine) Resolve(ctx context.Context, d *model.Diagram, mode Mode) (*Result, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}
	convention, err := conventionFor(mode)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   uuid.New().String(),
		Mode:    mode,
		Diagram: d,
		Errors:  model.NewDiagnostics(),
	}
	log := e.Log.With("run_id", res.RunID, "mode", mode)
	log.Info("resolution started",
		"concepts", d.Concepts.Len(),
		"relations", d.Relations.Len(),
		"individuals", d.Individuals.Len(),
	)

	e.stage(log, "reference", func() {
		res.Stats.BlocksReanchored = reference.NewResolver(e.Options.ReferenceHops).Resolve(&d.AttributeBlocks, &d.Concepts)
	}, func() []any { return []any{"reanchored", res.Stats.BlocksReanchored} })

	e.stage(log, "concept_attributes", func() {
		res.Concepts = association.ConceptAttributes(&d.Concepts, &d.AttributeBlocks)
	}, func() []any { return []any{"concepts", res.Concepts.Len()} })

	e.stage(log, "concept_relations", func() {
		res.Stats.Relations = association.ConceptRelations(res.Concepts, &d.Relations)
	}, func() []any { return []any{"filed", res.Stats.Relations.Filed, "unfiled", res.Stats.Relations.Unfiled} })

	e.stage(log, "typing", func() {
		resolver := typing.NewResolver(convention, e.Options.AdjacencyTolerance, log)
		res.Stats.Typing = resolver.Resolve(&d.Individuals, res.Concepts, &d.Relations, &d.Hexagons, res.Errors)
	}, func() []any {
		s := res.Stats.Typing
		return []any{"explicit", s.Explicit, "enumerated", s.Enumerated, "adjacent", s.Adjacent}
	})

	e.stage(log, "enrich", func() {
		res.Stats.Enrichment = enrich.NewEnricher(e.Options.Enrich, log).Enrich(d, res.Errors)
		res.Stats.ConceptsPruned = pruneAssociations(res.Concepts, &d.Concepts)
	}, func() []any {
		s := res.Stats.Enrichment
		return []any{
			"annotated", s.Annotated,
			"flagged", s.Flagged,
			"synthesized", s.Synthesized,
			"reclassified", s.Reclassified,
			"rejected", s.Rejected,
		}
	})

	if mode == ModeRDF {
		e.stage(log, "individual_associations", func() {
			res.Individuals = association.IndividualRelations(&d.Individuals, &d.Relations)
			res.Stats.ValueEdges = association.IndividualAttributes(res.Individuals, &d.Values, &d.Relations)
		}, func() []any { return []any{"individuals", res.Individuals.Len(), "value_edges", res.Stats.ValueEdges} })
	}

	for _, check := range res.Errors.Checks() {
		e.Metrics.ObserveDiagnostics(check, len(res.Errors.Get(check)))
	}
	status := "clean"
	if !res.Errors.Empty() {
		status = "diagnostics"
	}
	e.Metrics.ObserveRun(string(mode), status)
	log.Info("resolution finished", "diagnostics", res.Errors.Len())
	return res, nil
}

func (e *Engine) stage(log *logger.Logger, name string, run func(), summary func() []any) {
	start := time.Now()
	run()
	elapsed := time.Since(start)
	e.Metrics.ObserveStage(name, elapsed)
	log.Debug("stage done", append([]any{"stage", name, "elapsed", elapsed}, summary()...)...)
}

func conventionFor(mode Mode) (geometry.Convention, error) {
	switch mode {
	case ModeOWL:
		return typing.OWLConvention, nil
	case ModeRDF:
		return typing.RDFConvention, nil
	}
	return geometry.Convention{}, fmt.Errorf("unknown mode '%s'", mode)
}

// pruneAssociations drops associations whose concept was removed from
// concepts, which happens when enrichment reclassifies a concept box as a
// datatype.
func pruneAssociations(associations *model.ConceptAssociations, concepts *model.Collection[*model.Concept]) int {
	pruned := 0
	for id := range associations.All() {
		if !concepts.Has(id) {
			associations.Delete(id)
			pruned++
		}
	}
	return pruned
}
