package telemetry

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		method   string
		target   string
		pattern  string
		upgrade  bool
		wantName string
	}{
		"matched-pattern": {
			method:   "POST",
			target:   "/v1/route",
			pattern:  "POST /v1/route",
			wantName: "POST /v1/route",
		},
		"unmatched-path": {
			method:   "GET",
			target:   "/v1/unknown",
			wantName: "GET /v1/unknown",
		},
		"stream-upgrade": {
			method:   "GET",
			target:   "/v1/stream",
			pattern:  "GET /v1/stream",
			upgrade:  true,
			wantName: "WS GET /v1/stream",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, nil)
			r.Pattern = tt.pattern
			if tt.upgrade {
				r.Header.Set("Upgrade", "WebSocket")
			}
			assert.Equal(t, tt.wantName, SpanNameFormatter("", r))
		})
	}
}

func TestWithHttpMetricAttributes(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/stream", nil)
	r.Pattern = "GET /v1/stream"
	assert.Equal(t, []attribute.KeyValue{attribute.String("http.route", "GET /v1/stream")}, WithHttpMetricAttributes(r))

	r.Header.Set("Upgrade", "websocket")
	assert.Contains(t, WithHttpMetricAttributes(r), attribute.Bool("websocket", true))
}

func TestRecordErrorAndStatus(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	_, failed := tp.Tracer("test").Start(t.Context(), "failed")
	assert.True(t, RecordErrorAndStatus(failed, errors.New("embedder unavailable")))
	failed.End()

	_, ok := tp.Tracer("test").Start(t.Context(), "ok")
	assert.False(t, RecordErrorAndStatus(ok, nil))
	ok.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "embedder unavailable", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)
}

func TestStart(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() { tracer = previous })

	_, span := Start(t.Context())
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
}

func TestDurationView(t *testing.T) {
	tests := map[string]struct {
		instrument sdkmetric.Instrument
		wantMatch  bool
		wantBounds []float64
	}{
		"routing-latency": {
			instrument: sdkmetric.Instrument{Name: "router_route_duration_seconds"},
			wantMatch:  true,
			wantBounds: routingBuckets,
		},
		"agent-latency": {
			instrument: sdkmetric.Instrument{Name: "agent_call_duration_seconds"},
			wantMatch:  true,
			wantBounds: durationBuckets,
		},
		"counter": {
			instrument: sdkmetric.Instrument{Name: "router_routes_total"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stream, ok := durationView(tt.instrument)
			assert.Equal(t, tt.wantMatch, ok)
			if !tt.wantMatch {
				return
			}
			assert.Equal(t, tt.instrument.Name, stream.Name)
			assert.Equal(t, sdkmetric.AggregationExplicitBucketHistogram{Boundaries: tt.wantBounds}, stream.Aggregation)
		})
	}
}
