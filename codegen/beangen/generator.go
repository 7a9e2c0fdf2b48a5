package beangen

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/codegen/region"
	"goa.design/beans/runtime/telemetry"
)

// RuntimeImport is the import path generated code depends on.
const RuntimeImport = "goa.design/beans/runtime/beans"

// Unit outcomes recorded with MetricUnits.
const (
	outcomeSkipped   = "skipped"
	outcomeUnchanged = "unchanged"
	outcomeRewritten = "rewritten"
	outcomeFailed    = "failed"
)

type (
	// Config configures a Generator. The zero value is usable.
	Config struct {
		// Indent replaces the leading tabs of generated lines. Defaults to a
		// single tab.
		Indent string
		// FieldPrefix is stripped from field names when deriving property
		// names.
		FieldPrefix string
		// Logger receives generation events. Defaults to a no-op logger.
		Logger telemetry.Logger
		// Metrics records generation metrics. Defaults to no-op metrics.
		Metrics telemetry.Metrics
		// Tracer traces each generated unit. Defaults to a no-op tracer.
		Tracer telemetry.Tracer
	}

	// Generator rewrites bean source units.
	Generator struct {
		cfg    Config
		parser markers.Parser
	}

	// Result is the outcome of generating one unit.
	Result struct {
		// Lines is the rewritten unit, or the input when the unit declares no
		// bean.
		Lines []string
		// Bean is the parsed bean, nil when the unit is not a target.
		Bean *markers.BeanModel
		// Changed reports whether Lines differs from the input.
		Changed bool
		// Created reports whether the region markers were added.
		Created bool
	}
)

// New returns a Generator for cfg with defaults applied.
func New(cfg Config) *Generator {
	if cfg.Indent == "" {
		cfg.Indent = region.DefaultIndent
	}
	tb := telemetry.Bundle{Logger: cfg.Logger, Metrics: cfg.Metrics, Tracer: cfg.Tracer}.WithDefaults()
	cfg.Logger, cfg.Metrics, cfg.Tracer = tb.Logger, tb.Metrics, tb.Tracer
	return &Generator{cfg: cfg, parser: markers.Parser{FieldPrefix: cfg.FieldPrefix}}
}

// Config returns the configuration with defaults applied.
func (g *Generator) Config() Config { return g.cfg }

// Generate rewrites the unit named name. Structural problems are reported as
// *markers.StructuralError carrying name. The input slice is never modified.
func (g *Generator) Generate(ctx context.Context, name string, lines []string) (*Result, error) {
	ctx, span := g.cfg.Tracer.Start(ctx, "beangen.generate", trace.WithAttributes(attribute.String("beangen.unit", name)))
	defer span.End()
	start := time.Now()

	res, err := g.generate(ctx, name, lines)
	outcome := outcomeFor(res, err)
	g.cfg.Metrics.IncCounter(telemetry.MetricUnits, 1, "outcome", outcome)
	g.cfg.Metrics.RecordTimer(telemetry.MetricDuration, time.Since(start), "outcome", outcome)
	if err != nil {
		var serr *markers.StructuralError
		if errors.As(err, &serr) && serr.File == "" {
			serr.File = name
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.cfg.Logger.Error(ctx, "bean generation failed", "unit", name, "err", err)
		return nil, err
	}
	span.SetStatus(codes.Ok, outcome)
	return res, nil
}

func (g *Generator) generate(ctx context.Context, name string, lines []string) (*Result, error) {
	model, err := g.parser.Parse(lines)
	if err != nil {
		return nil, err
	}
	if model == nil {
		g.cfg.Logger.Debug(ctx, "no bean definition, skipping", "unit", name)
		return &Result{Lines: lines}, nil
	}
	g.cfg.Tracer.Span(ctx).AddEvent("parsed", "bean", model.Name, "properties", len(model.Properties))
	g.cfg.Metrics.RecordGauge(telemetry.MetricProperties, float64(len(model.Properties)), "bean", model.Name)

	split, err := region.Locate(lines)
	if err != nil {
		return nil, err
	}
	if split.Created {
		g.cfg.Logger.Info(ctx, "creating generated region", "unit", name, "bean", model.Name)
	}
	if split.Completed {
		g.cfg.Logger.Warn(ctx, "generated region had no end marker", "unit", name, "bean", model.Name)
	}
	if !importsRuntime(split.Prefix) {
		g.cfg.Logger.Warn(ctx, "unit does not import the bean runtime", "unit", name, "import", RuntimeImport)
	}

	generated, err := Synthesize(model)
	if err != nil {
		return nil, err
	}
	out := region.Rewrite(split.Prefix, split.Suffix, region.ResolveIndent(generated, g.cfg.Indent))
	return &Result{
		Lines:   out,
		Bean:    model,
		Changed: !slices.Equal(out, lines),
		Created: split.Created,
	}, nil
}

// importsRuntime reports whether the lines before the region import the
// bean runtime package.
func importsRuntime(lines []string) bool {
	quoted := `"` + RuntimeImport + `"`
	for _, l := range lines {
		if strings.Contains(l, quoted) {
			return true
		}
	}
	return false
}

func outcomeFor(res *Result, err error) string {
	switch {
	case err != nil:
		return outcomeFailed
	case res.Bean == nil:
		return outcomeSkipped
	case res.Changed:
		return outcomeRewritten
	default:
		return outcomeUnchanged
	}
}
