package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEmbedder_Embed(t *testing.T) {
	tests := map[string]struct {
		model         string
		texts         []string
		response      string
		statusCode    int
		expectErr     bool
		expectedInput []string
		expected      []domain.Embedding
	}{
		"success-reordered-by-index": {
			model: "ai/qwen3-embedding",
			texts: []string{"rain tomorrow", "book a flight"},
			response: `{
				"model": "ai/qwen3-embedding",
				"object": "list",
				"usage": { "prompt_tokens": 6, "total_tokens": 6 },
				"data": [
					{ "embedding": [0.0, 1.0], "index": 1, "object": "embedding" },
					{ "embedding": [1.0, 0.0], "index": 0, "object": "embedding" }
				]
			}`,
			statusCode:    http.StatusOK,
			expectedInput: []string{"rain tomorrow", "book a flight"},
			expected: []domain.Embedding{
				{Text: "rain tomorrow", Vector: []float64{1.0, 0.0}},
				{Text: "book a flight", Vector: []float64{0.0, 1.0}},
			},
		},
		"gemma-prompt": {
			model:         "ai/embeddinggemma",
			texts:         []string{"rain tomorrow"},
			response:      `{"data": [{ "embedding": [0.5, 0.5], "index": 0 }]}`,
			statusCode:    http.StatusOK,
			expectedInput: []string{"task: classification | query: rain tomorrow"},
			expected: []domain.Embedding{
				{Text: "rain tomorrow", Vector: []float64{0.5, 0.5}},
			},
		},
		"count-mismatch": {
			model:      "ai/qwen3-embedding",
			texts:      []string{"a", "b"},
			response:   `{"data": [{ "embedding": [1.0], "index": 0 }]}`,
			statusCode: http.StatusOK,
			expectErr:  true,
		},
		"duplicate-index": {
			model:      "ai/qwen3-embedding",
			texts:      []string{"a", "b"},
			response:   `{"data": [{ "embedding": [1.0], "index": 0 }, { "embedding": [2.0], "index": 0 }]}`,
			statusCode: http.StatusOK,
			expectErr:  true,
		},
		"server-error": {
			model:      "ai/qwen3-embedding",
			texts:      []string{"a"},
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			expectErr:  true,
		},
		"invalid-json": {
			model:      "ai/qwen3-embedding",
			texts:      []string{"a"},
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var captured embeddingRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/engines/v1/embeddings", r.URL.Path)
				json.NewDecoder(r.Body).Decode(&captured) //nolint:errcheck
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			embedder := NewTextEmbedder(NewClient(server.URL, "", server.Client()), tt.model)

			got, err := embedder.Embed(context.Background(), tt.texts)
			if tt.expectErr {
				var providerErr *domain.ProviderErr
				assert.ErrorAs(t, err, &providerErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.model, captured.Model)
			assert.Equal(t, tt.expectedInput, captured.Input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTextEmbedder_Embed_NoTexts(t *testing.T) {
	embedder := NewTextEmbedder(NewClient("http://unused", "", http.DefaultClient), "ai/qwen3-embedding")

	got, err := embedder.Embed(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestInitTextEmbedder_Initialize(t *testing.T) {
	i := InitTextEmbedder{EmbeddingModel: "ai/embeddinggemma"}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.TextEmbedder]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
}
