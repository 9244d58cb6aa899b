package telemetry

import (
	"context"
	"fmt"

	"github.com/phanxgames/hitgraph"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/phanxgames/hitgraph/telemetry"

// Attribute keys set on every dispatch span.
const (
	AttrEvent     = attribute.Key("hitgraph.event")
	AttrTarget    = attribute.Key("hitgraph.target")
	AttrPointerID = attribute.Key("hitgraph.pointer_id")
	AttrButton    = attribute.Key("hitgraph.button")
	AttrSceneX    = attribute.Key("hitgraph.scene.x")
	AttrSceneY    = attribute.Key("hitgraph.scene.y")
	AttrInvoked   = attribute.Key("hitgraph.handlers_invoked")
	AttrStopped   = attribute.Key("hitgraph.propagation_stopped")
)

// TraceSink is a hitgraph.EventSink that records one span per dispatch.
// Dispatch carries no context, so the sink holds only the span context of
// an optional parent (typically the current frame's span).
type TraceSink struct {
	tracer trace.Tracer
	parent trace.SpanContext
}

// NewTraceSink returns a sink that starts root spans until SetParent is
// called. A nil provider uses the global one registered with
// otel.SetTracerProvider.
func NewTraceSink(tp trace.TracerProvider) *TraceSink {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &TraceSink{tracer: tp.Tracer(instrumentationName)}
}

// SetParent makes later dispatch spans children of sc. An invalid span
// context clears the parent.
func (s *TraceSink) SetParent(sc trace.SpanContext) {
	s.parent = sc
}

// EmitDispatch implements hitgraph.EventSink.
func (s *TraceSink) EmitDispatch(r hitgraph.DispatchRecord) {
	ctx := context.Background()
	if s.parent.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, s.parent)
	}
	_, span := s.tracer.Start(ctx, "hitgraph."+r.Kind.String(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(Attributes(r)...),
	)
	if r.Invoked == 0 && r.Kind != hitgraph.EventPointerMove {
		span.AddEvent("unhandled")
	}
	span.End()
}

// Attributes converts a dispatch record into span attributes.
func Attributes(r hitgraph.DispatchRecord) []attribute.KeyValue {
	kvs := []attribute.KeyValue{
		AttrEvent.String(r.Kind.String()),
		AttrPointerID.Int(r.Native.PointerID),
		AttrSceneX.Float64(r.Point.X),
		AttrSceneY.Float64(r.Point.Y),
		AttrInvoked.Int(r.Invoked),
		AttrStopped.Bool(r.Stopped),
	}
	if r.Target != nil {
		kvs = append(kvs, AttrTarget.String(fmt.Sprintf("%v", r.Target)))
	}
	switch r.Kind {
	case hitgraph.EventClick, hitgraph.EventContextMenu, hitgraph.EventDoubleClick,
		hitgraph.EventPointerDown, hitgraph.EventPointerUp:
		kvs = append(kvs, AttrButton.Int(int(r.Native.Button)))
	}
	return kvs
}

// Fanout forwards every record to each non-nil sink in order.
type Fanout []hitgraph.EventSink

// EmitDispatch implements hitgraph.EventSink.
func (f Fanout) EmitDispatch(r hitgraph.DispatchRecord) {
	for _, s := range f {
		if s != nil {
			s.EmitDispatch(r)
		}
	}
}
