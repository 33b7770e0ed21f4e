package observability

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// SetupTracing initializes OpenTelemetry tracing with stdout exporter (for demo; replace with OTLP in prod)
func SetupTracing(serviceName string) func() {
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("failed to initialize stdouttrace exporter: %v", err)
	}
	res, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	provider := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return func() { _ = provider.Shutdown(context.Background()) }
}

// SetupPrometheusMetrics initializes Prometheus metrics exporter and exposes /metrics endpoint
func SetupPrometheusMetrics() *metric.MeterProvider {
	exp, err := prometheus.New()
	if err != nil {
		log.Fatalf("failed to initialize prometheus exporter: %v", err)
	}
	mp := metric.NewMeterProvider(metric.WithReader(exp))
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(":2112", nil)
	}()
	return mp
}

// Metrics bundles the counters the API handlers report into.
type Metrics struct {
	ChatRequests   api.Int64Counter
	ProviderErrors api.Int64Counter
	CreditUpdates  api.Int64Counter
	TTSCacheHits   api.Int64Counter
}

// NewMetrics creates the application instruments on the given provider.
func NewMetrics(mp *metric.MeterProvider) *Metrics {
	meter := mp.Meter("animeai-backend")

	chat, _ := meter.Int64Counter("animeai_chat_requests_total",
		api.WithDescription("Chat completions requested"))
	perr, _ := meter.Int64Counter("animeai_provider_errors_total",
		api.WithDescription("Failed calls to the AI provider"))
	credits, _ := meter.Int64Counter("animeai_credit_updates_total",
		api.WithDescription("Credit balance writes"))
	tts, _ := meter.Int64Counter("animeai_tts_cache_hits_total",
		api.WithDescription("Text-to-speech responses served from cache"))

	return &Metrics{
		ChatRequests:   chat,
		ProviderErrors: perr,
		CreditUpdates:  credits,
		TTSCacheHits:   tts,
	}
}

// RecordProviderError increments the provider error counter tagged with the
// failing operation. Safe on a nil receiver so tests can skip metrics wiring.
func (m *Metrics) RecordProviderError(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.ProviderErrors.Add(ctx, 1, api.WithAttributes(attribute.String("operation", operation)))
}

// RecordChatRequest increments the chat request counter.
func (m *Metrics) RecordChatRequest(ctx context.Context) {
	if m == nil {
		return
	}
	m.ChatRequests.Add(ctx, 1)
}

// RecordCreditUpdate increments the credit write counter.
func (m *Metrics) RecordCreditUpdate(ctx context.Context) {
	if m == nil {
		return
	}
	m.CreditUpdates.Add(ctx, 1)
}

// RecordTTSCacheHit increments the TTS cache hit counter.
func (m *Metrics) RecordTTSCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.TTSCacheHits.Add(ctx, 1)
}
