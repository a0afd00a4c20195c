// Package observability wires OpenTelemetry tracing for the daemon. Tracing
// is off by default; when disabled every helper degrades to a no-op.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Config holds telemetry configuration.
type Config struct {
	Enabled     bool
	Exporter    string  // otlp-http, stdout
	Endpoint    string  // localhost:4318
	ServiceName string  // rift
	SampleRate  float64 // 0.0 to 1.0
}

// Provider wraps the OpenTelemetry TracerProvider.
type Provider struct {
	tp      *sdktrace.TracerProvider
	tracer  trace.Tracer
	enabled bool
}

var globalProvider = &Provider{enabled: false}

// Init initialises the global telemetry provider.
func Init(ctx context.Context, cfg Config) error {
	if !cfg.Enabled {
		globalProvider = &Provider{enabled: false, tracer: trace.NewNoopTracerProvider().Tracer("")}
		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}

	var exporter sdktrace.SpanExporter
	switch cfg.Exporter {
	case "otlp-http", "otlp":
		exp, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("create OTLP exporter: %w", err)
		}
		exporter = exp
	case "stdout":
		// For local testing; avoids shipping spans anywhere.
		exporter = &noopExporter{}
	default:
		return fmt.Errorf("unknown exporter: %s", cfg.Exporter)
	}

	sampler := sdktrace.AlwaysSample()
	if cfg.SampleRate < 1.0 && cfg.SampleRate >= 0 {
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	globalProvider = &Provider{
		tp:      tp,
		tracer:  tp.Tracer("rift"),
		enabled: true,
	}
	return nil
}

// Shutdown flushes and stops the tracer provider.
func Shutdown(ctx context.Context) error {
	if globalProvider.tp == nil {
		return nil
	}
	return globalProvider.tp.Shutdown(ctx)
}

// Enabled reports whether tracing is active.
func Enabled() bool {
	return globalProvider.enabled
}

// Tracer returns the active tracer.
func Tracer() trace.Tracer {
	if globalProvider.tracer == nil {
		return trace.NewNoopTracerProvider().Tracer("")
	}
	return globalProvider.tracer
}

// noopExporter drops all spans.
type noopExporter struct{}

func (*noopExporter) ExportSpans(context.Context, []sdktrace.ReadOnlySpan) error { return nil }
func (*noopExporter) Shutdown(context.Context) error                             { return nil }
