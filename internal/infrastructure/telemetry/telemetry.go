package telemetry

import (
	"context"
	"log"

	"autocare_api/internal/infrastructure/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Setup installs a global tracer provider exporting over OTLP gRPC. Without an endpoint
// tracing stays a no-op. The returned func flushes and stops the exporter.
func Setup(ctx context.Context, cfg config.Telemetry) func(context.Context) error {
	noop := func(context.Context) error { return nil }
	if cfg.OTLPEndpoint == "" {
		return noop
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		log.Printf("[telemetry] otlp exporter failed err=%v", err)
		return noop
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		log.Printf("[telemetry] resource failed err=%v", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	log.Printf("[telemetry] tracing enabled endpoint=%s service=%s", cfg.OTLPEndpoint, cfg.ServiceName)

	return provider.Shutdown
}
