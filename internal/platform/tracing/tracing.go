// Package tracing installs the OpenTelemetry tracer provider. Spans are not
// exported; their ids tie together the log lines of one assessment.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init creates a tracer provider for serviceName and registers it globally.
// Call the returned shutdown function before exit.
func Init(serviceName string) (*sdktrace.TracerProvider, func(context.Context) error) {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	return tp, tp.Shutdown
}
