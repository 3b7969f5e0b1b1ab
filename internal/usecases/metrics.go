package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                    = otel.Meter("usecases")
	LLMTokensUsed            metric.Int64Counter
	RouterRouteDuration      metric.Float64Histogram
	RouterRoutesTotal        metric.Int64Counter
	AgentCallsTotal          metric.Int64Counter
	AgentCallDuration        metric.Float64Histogram
	StreamSessionsActive     metric.Int64UpDownCounter
	StreamSessionsTotal      metric.Int64Counter
	StreamFramesTotal        metric.Int64Counter
	StreamOutboundQueueDepth metric.Int64Gauge
)

// Routing outcomes reported by the semantic router.
const (
	routeOutcome_Matched = "matched"
	routeOutcome_Default = "default"
	routeOutcome_None    = "none"
	routeOutcome_Error   = "error"
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	RouterRouteDuration, err = meter.Float64Histogram(
		"router_route_duration_seconds",
		metric.WithDescription("Time spent answering a routing request"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	RouterRoutesTotal, err = meter.Int64Counter(
		"router_routes_total",
		metric.WithDescription("Routing requests by outcome"),
	)
	if err != nil {
		panic(err)
	}

	AgentCallsTotal, err = meter.Int64Counter(
		"agent_calls_total",
		metric.WithDescription("Agent executions by agent and result"),
	)
	if err != nil {
		panic(err)
	}

	AgentCallDuration, err = meter.Float64Histogram(
		"agent_call_duration_seconds",
		metric.WithDescription("Agent execution time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	StreamSessionsActive, err = meter.Int64UpDownCounter(
		"stream_sessions_active",
		metric.WithDescription("Streaming sessions currently open"),
	)
	if err != nil {
		panic(err)
	}

	StreamSessionsTotal, err = meter.Int64Counter(
		"stream_sessions_total",
		metric.WithDescription("Finished streaming sessions by close code"),
	)
	if err != nil {
		panic(err)
	}

	StreamFramesTotal, err = meter.Int64Counter(
		"stream_frames_total",
		metric.WithDescription("Frames exchanged on streaming sessions"),
	)
	if err != nil {
		panic(err)
	}

	StreamOutboundQueueDepth, err = meter.Int64Gauge(
		"stream_outbound_queue_depth",
		metric.WithDescription("Frames waiting in a session outbound queue"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordRouting records the outcome and latency of one routing request.
func RecordRouting(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	RouterRoutesTotal.Add(ctx, 1, attrs)
	RouterRouteDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordAgentCall records one agent execution.
func RecordAgentCall(ctx context.Context, agentName string, failed bool, responseTime float64) {
	result := "success"
	if failed {
		result = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("agent", agentName),
		attribute.String("result", result),
	)
	AgentCallsTotal.Add(ctx, 1, attrs)
	AgentCallDuration.Record(ctx, responseTime, attrs)
}

// RecordFrame records one frame crossing a streaming session.
func RecordFrame(ctx context.Context, direction string, frameType domain.FrameType) {
	StreamFramesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("direction", direction),
		attribute.String("type", frameType.String()),
	))
}

// RecordSessionClosed records a finished streaming session.
func RecordSessionClosed(ctx context.Context, code domain.CloseCode) {
	StreamSessionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("close_code", int(code)),
	))
}
