package telemetry

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// Routing answers within milliseconds while agent calls and stream sessions can run for minutes.
var (
	routingBuckets  = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
	durationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300}
)

// WithHttpMetricAttributes labels HTTP server metrics with the matched route.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{semconv.HTTPRoute(requestRoute(r))}
	if isWebSocketUpgrade(r) {
		attrs = append(attrs, attribute.Bool("websocket", true))
	}
	return attrs
}

// durationView gives every duration histogram explicit buckets, finer ones for routing.
func durationView(inst sdkmetric.Instrument) (sdkmetric.Stream, bool) {
	if !strings.Contains(inst.Name, "duration") {
		return sdkmetric.Stream{}, false
	}
	boundaries := durationBuckets
	if strings.HasPrefix(inst.Name, "router_route") {
		boundaries = routingBuckets
	}
	return sdkmetric.Stream{
		Name:        inst.Name,
		Description: inst.Description,
		Unit:        inst.Unit,
		Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: boundaries},
	}, true
}

func newMeterProvider(ctx context.Context, res *resource.Resource, interval time.Duration) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
		sdkmetric.WithView(durationView),
	)
	return provider, exporter, nil
}
