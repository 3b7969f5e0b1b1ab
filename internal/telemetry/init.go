package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// disabledEndpoint turns an OTLP exporter off.
const disabledEndpoint = "-"

// InitOpenTelemetry installs the W3C propagators and, when their endpoints are set,
// the OTLP trace and metric pipelines.
type InitOpenTelemetry struct {
	Logger          *log.Logger   `resolve:""`
	ServiceName     string        `config:"OTEL_SERVICE_NAME" default:"agentgateway"`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	BatchTimeout    time.Duration `config:"OTEL_TRACES_BATCH_TIMEOUT" default:"1s"`
	ExportInterval  time.Duration `config:"OTEL_METRICS_EXPORT_INTERVAL" default:"5s"`

	shutdowns []func(context.Context) error
}

func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(o.ServiceName)))
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}

	if o.TracesEndpoint != disabledEndpoint {
		tp, exporter, err := newTracerProvider(ctx, res, o.BatchTimeout)
		if err != nil {
			return ctx, fmt.Errorf("failed to create tracer provider: %w", err)
		}
		otel.SetTracerProvider(tp)
		o.shutdowns = append(o.shutdowns, tp.Shutdown, exporter.Shutdown)
		o.Logger.Printf("InitOpenTelemetry: exporting traces for %s", o.ServiceName)
	}

	if o.MetricsEndpoint != disabledEndpoint {
		mp, exporter, err := newMeterProvider(ctx, res, o.ExportInterval)
		if err != nil {
			return ctx, fmt.Errorf("failed to create meter provider: %w", err)
		}
		otel.SetMeterProvider(mp)
		o.shutdowns = append(o.shutdowns, mp.Shutdown, exporter.Shutdown)
		o.Logger.Printf("InitOpenTelemetry: exporting metrics every %s", o.ExportInterval)
	}

	return ctx, nil
}

// Close flushes pending telemetry. Providers are shut down before their exporters.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, shutdown := range o.shutdowns {
		if err := shutdown(ctx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: shutdown failed: %v", err)
		}
	}
	o.shutdowns = nil
}

// InitHttpClient registers the *http.Client used for agent and model calls. It retries
// transient failures and propagates the trace context to the remote side.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = i.RetryMax
	retryClient.RetryWaitMax = i.RetryWaitMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = i.Logger

	client := retryClient.StandardClient()
	client.Transport = otelhttp.NewTransport(
		client.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(client)
	return ctx, nil
}

// dontRetry500StatusPolicy stops retrying once the caller gave up or the server answered
// with a 500, which agents use for failures that a retry will not fix.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
