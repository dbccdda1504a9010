package observability

import (
	"context"
	"log"
	"time"

	"github.com/prefeitura-rio/app-focos-incendio/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serviceName = "app-focos-incendio"

// ServiceVersion é a versão publicada em / e nos spans
const ServiceVersion = "1.0.0"

var (
	tracerProvider *sdktrace.TracerProvider
)

// InitTracer initializes the OpenTelemetry tracer with gRPC OTLP exporter
func InitTracer(cfg *config.Config) {
	if !cfg.TracingEnabled {
		log.Println("Tracing desabilitado")
		return
	}

	ctx := context.Background()

	// Create OTLP gRPC exporter
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		log.Printf("Erro ao criar exportador OTLP: %v", err)
		return
	}

	// Create resource with service information
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		log.Printf("Erro ao criar resource: %v", err)
		return
	}

	// Create trace provider with batching
	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(time.Second*10),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	// Set global trace provider
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Printf("Tracer inicializado (endpoint %s)", cfg.TracingEndpoint)
}

// Tracer retorna o tracer nomeado do provider global (noop quando desabilitado)
func Tracer(name string) trace.Tracer {
	return otel.Tracer(serviceName + "/" + name)
}

// ShutdownTracer shuts down the tracer provider gracefully
func ShutdownTracer(ctx context.Context) {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Printf("Erro ao encerrar tracer provider: %v", err)
	}
}
