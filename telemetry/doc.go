// Package telemetry reports hitgraph dispatches as OpenTelemetry spans.
//
// Each dispatch that resolved a target becomes one short internal span
// named after the event kind, carrying the target, pointer and handler
// counts as attributes:
//
//	sink := telemetry.NewTraceSink(nil) // global TracerProvider
//	dispatcher.SetEventSink(sink)
//	sink.SetParent(frameSpan.SpanContext()) // once per frame
//
// Combine it with another sink through [Fanout].
package telemetry
