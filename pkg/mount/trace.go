package mount

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vmount/pkg/host"
)

const defaultTracerName = "vmount"

func (r *Runtime) startSpan(ctx context.Context, name string, target *host.Node) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{}
	if target != nil {
		attrs = append(attrs, attribute.String("vmount.target.kind", target.Kind.String()))
		if target.Tag != "" {
			attrs = append(attrs, attribute.String("vmount.target.tag", target.Tag))
		}
	}
	return r.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
