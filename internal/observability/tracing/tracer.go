// Package tracing provides OpenTelemetry tracing for the HTTP surface.
// Without a configured SDK exporter the spans are non-recording; wiring a
// provider in main turns them on without touching the middleware.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("newsdesk")

// GetTracer returns the tracer used for request spans.
func GetTracer() trace.Tracer {
	return tracer
}
