package modelrunner

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// promptFormatter prepares a text for a specific embedding model.
type promptFormatter func(text string) string

// promptFormatterFor returns the formatter expected by the given model.
// Routing phrases and requests are compared symmetrically, so both sides use the same prompt.
func promptFormatterFor(model string) promptFormatter {
	if strings.Contains(model, "embeddinggemma") {
		return func(text string) string {
			return "task: classification | query: " + text
		}
	}
	return func(text string) string { return text }
}

// TextEmbedder implements domain.TextEmbedder on top of the embeddings endpoint.
type TextEmbedder struct {
	client Client
	model  string
	format promptFormatter
}

// NewTextEmbedder creates an embedder for the given model.
func NewTextEmbedder(client Client, model string) TextEmbedder {
	return TextEmbedder{
		client: client,
		model:  model,
		format: promptFormatterFor(model),
	}
}

// Embed returns one embedding per text, in input order.
func (e TextEmbedder) Embed(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", e.model),
		attribute.Int("texts", len(texts)),
	))
	defer span.End()

	input := make([]string, len(texts))
	for i, text := range texts {
		input[i] = e.format(text)
	}

	resp, err := e.client.embed(spanCtx, embeddingRequest{
		Model: e.model,
		Input: input,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewProviderErr("embedding request failed", err)
	}

	if len(resp.Data) != len(texts) {
		err := domain.NewProviderErr(
			fmt.Sprintf("embedding model returned %d vectors for %d texts", len(resp.Data), len(texts)),
			nil,
		)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	embeddings := make([]domain.Embedding, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) || embeddings[d.Index].Vector != nil {
			err := domain.NewProviderErr(fmt.Sprintf("embedding model returned unexpected index %d", d.Index), nil)
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		embeddings[d.Index] = domain.Embedding{
			Text:   texts[d.Index],
			Vector: d.Embedding,
		}
	}
	span.SetAttributes(attribute.Int("total_tokens", resp.Usage.TotalTokens))

	return embeddings, nil
}

// InitTextEmbedder registers the TextEmbedder dependency.
type InitTextEmbedder struct {
	HttpClient     *http.Client `resolve:""`
	LLMHost        string       `config:"LLM_MODEL_HOST"`
	APIKey         string       `config:"LLM_API_KEY" default:"-"`
	EmbeddingModel string       `config:"LLM_EMBEDDING_MODEL" default:"ai/embeddinggemma"`
}

// Initialize registers the embedder as the domain.TextEmbedder.
func (i InitTextEmbedder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TextEmbedder](NewTextEmbedder(
		NewClient(i.LLMHost, apiKey(i.APIKey), i.HttpClient),
		i.EmbeddingModel,
	))
	return ctx, nil
}
