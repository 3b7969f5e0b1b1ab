package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LLMClient implements domain.LLMClient with the chat completions endpoint.
type LLMClient struct {
	client Client
}

func NewLLMClient(client Client) LLMClient {
	return LLMClient{client: client}
}

func (l LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("model", req.Model)))
	defer span.End()

	resp, err := l.client.complete(spanCtx, newCompletionRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("model returned no choices")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	out := domain.LLMChatResponse{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		out.Usage = resp.Usage.toDomain()
	}
	return out, nil
}

// ChatStream emits one delta event per non-empty content chunk, then a done event with the
// token usage. When the server reports no usage, prompt tokens are estimated from the words.
func (l LLMClient) ChatStream(ctx context.Context, req domain.LLMChatRequest, onEvent domain.LLMStreamEventCallback) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("model", req.Model)))
	defer span.End()

	creq := newCompletionRequest(req)
	creq.StreamOptions = &streamOptions{IncludeUsage: true}

	var usage *tokenUsage
	err := l.client.completeStream(spanCtx, creq, func(chunk completionChunk) error {
		switch {
		case chunk.Usage != nil:
			usage = chunk.Usage
		case chunk.Timings != nil && usage == nil:
			u := chunk.Timings.usage()
			usage = &u
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onEvent(domain.LLMStreamEventType_Delta, domain.LLMStreamEventDelta{Text: choice.Delta.Content}); err != nil {
				return err
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	final := reconcileUsage(usage, estimatePromptTokens(creq.Messages))
	span.SetAttributes(attribute.Int("total_tokens", final.TotalTokens))

	return onEvent(domain.LLMStreamEventType_Done, domain.LLMStreamEventDone{
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Usage:       final.toDomain(),
	})
}

// reconcileUsage never reports fewer prompt tokens than the estimate.
func reconcileUsage(reported *tokenUsage, estimatedPrompt int) tokenUsage {
	if reported == nil {
		return tokenUsage{PromptTokens: estimatedPrompt, TotalTokens: estimatedPrompt}
	}
	u := *reported
	if u.PromptTokens < estimatedPrompt {
		u.PromptTokens = estimatedPrompt
		u.TotalTokens = u.PromptTokens + u.CompletionTokens
	}
	return u
}

// estimatePromptTokens assumes 1.3 tokens per word plus four tokens of framing per message.
func estimatePromptTokens(messages []completionMessage) int {
	words := 0
	for _, m := range messages {
		words += 4 + len(strings.Fields(m.Content))
	}
	return int(float64(words) * 1.3)
}

func newCompletionRequest(req domain.LLMChatRequest) completionRequest {
	out := completionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]completionMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, completionMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

func (u tokenUsage) toDomain() domain.LLMUsage {
	return domain.LLMUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

// InitLLMClient registers the domain.LLMClient used by LLM-backed agents.
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClient(NewClient(i.LLMHost, apiKey(i.APIKey), i.HttpClient)))
	return ctx, nil
}
