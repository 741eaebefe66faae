package anypang

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pang "github.com/vovakirdan/anypang/internal/games/anypang/core"
)

// tracer resolves against the global provider, so spans are dropped until
// telemetry is set up.
var tracer = otel.Tracer("github.com/vovakirdan/anypang/internal/games/anypang")

// trySwap wraps State.TrySwap in a span.
func (g *Game) trySwap(a, b pang.Coord) (pang.SwapResult, error) {
	ctx := g.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := tracer.Start(ctx, "anypang.swap",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("anypang.game", g.ID()),
			attribute.Int64("anypang.seed", g.seed),
			attribute.String("anypang.swap.from", a.String()),
			attribute.String("anypang.swap.to", b.String()),
		),
	)
	defer span.End()

	res, err := g.state.TrySwap(a, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}

	removed := 0
	for _, grp := range res.Groups {
		removed += grp.Len()
	}
	span.SetAttributes(
		attribute.Bool("anypang.swap.kept", res.Swapped),
		attribute.Int("anypang.swap.groups", len(res.Groups)),
		attribute.Int("anypang.swap.removed", removed),
	)
	return res, nil
}
