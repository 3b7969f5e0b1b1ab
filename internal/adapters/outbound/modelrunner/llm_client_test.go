package modelrunner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var helloRequest = domain.LLMChatRequest{
	Model:    "ai/qwen3",
	Messages: []domain.LLMChatMessage{{Role: "user", Content: "hello there"}},
}

// sseServer replays the given data payloads as server-sent events, then [DONE].
func sseServer(t *testing.T, payloads ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, chatCompletionsPath, r.URL.Path)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

		var req completionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		assert.Equal(t, &streamOptions{IncludeUsage: true}, req.StreamOptions)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, p := range payloads {
			fmt.Fprintf(w, "data: %s\n\n", p) //nolint:errcheck
		}
		fmt.Fprint(w, "data: [DONE]\n\n") //nolint:errcheck
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLLMClient_ChatStream(t *testing.T) {
	// "hello there" is 2 words plus 4 of framing: 6 * 1.3 = 7 estimated prompt tokens.
	tests := map[string]struct {
		payloads  []string
		wantText  []string
		wantUsage domain.LLMUsage
	}{
		"deltas-with-usage": {
			payloads: []string{
				`{"choices":[{"delta":{"content":"Gen"}}]}`,
				`{"choices":[{"delta":{"content":"eral"}}]}`,
				`{"choices":[],"usage":{"prompt_tokens":20,"completion_tokens":2,"total_tokens":22}}`,
			},
			wantText:  []string{"Gen", "eral"},
			wantUsage: domain.LLMUsage{PromptTokens: 20, CompletionTokens: 2, TotalTokens: 22},
		},
		"usage-below-estimate": {
			payloads: []string{
				`{"choices":[{"delta":{"content":"ok"}}],"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`,
			},
			wantText:  []string{"ok"},
			wantUsage: domain.LLMUsage{PromptTokens: 7, CompletionTokens: 1, TotalTokens: 8},
		},
		"llama-timings": {
			payloads: []string{
				`{"choices":[{"delta":{"content":"ok"}}],"timings":{"prompt_n":30,"predicted_n":5}}`,
			},
			wantText:  []string{"ok"},
			wantUsage: domain.LLMUsage{PromptTokens: 30, CompletionTokens: 5, TotalTokens: 35},
		},
		"estimated-usage-and-skipped-chunks": {
			payloads: []string{
				`{"choices":[{"delta":{"content":""}}]}`,
				`not json`,
				`{"choices":[{"delta":{"content":"fine"}}]}`,
			},
			wantText:  []string{"fine"},
			wantUsage: domain.LLMUsage{PromptTokens: 7, TotalTokens: 7},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := sseServer(t, tt.payloads...)
			llm := NewLLMClient(NewClient(server.URL, "", server.Client()))

			var (
				texts []string
				done  *domain.LLMStreamEventDone
			)
			err := llm.ChatStream(context.Background(), helloRequest, func(eventType domain.LLMStreamEventType, data any) error {
				switch eventType {
				case domain.LLMStreamEventType_Delta:
					texts = append(texts, data.(domain.LLMStreamEventDelta).Text)
				case domain.LLMStreamEventType_Done:
					d := data.(domain.LLMStreamEventDone)
					done = &d
				}
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, texts)
			require.NotNil(t, done)
			assert.Equal(t, tt.wantUsage, done.Usage)
			assert.NotEmpty(t, done.CompletedAt)
		})
	}
}

func TestLLMClient_ChatStream_Errors(t *testing.T) {
	t.Run("server-error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		llm := NewLLMClient(NewClient(server.URL, "", server.Client()))
		err := llm.ChatStream(context.Background(), helloRequest, func(domain.LLMStreamEventType, any) error { return nil })
		assert.ErrorContains(t, err, "503")
		assert.ErrorContains(t, err, "model not loaded")
	})

	t.Run("callback-error-stops-stream", func(t *testing.T) {
		server := sseServer(t, `{"choices":[{"delta":{"content":"a"}}]}`, `{"choices":[{"delta":{"content":"b"}}]}`)
		llm := NewLLMClient(NewClient(server.URL, "", server.Client()))

		calls := 0
		err := llm.ChatStream(context.Background(), helloRequest, func(domain.LLMStreamEventType, any) error {
			calls++
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}

func TestLLMClient_Chat(t *testing.T) {
	temperature := 0.2
	maxTokens := 64

	tests := map[string]struct {
		req        domain.LLMChatRequest
		status     int
		response   string
		wantReq    func(*testing.T, completionRequest)
		wantResp   domain.LLMChatResponse
		wantErrMsg string
	}{
		"answer-with-usage": {
			req:      helloRequest,
			status:   http.StatusOK,
			response: `{"choices":[{"message":{"role":"assistant","content":"General Kenobi"}}],"usage":{"prompt_tokens":8,"completion_tokens":3,"total_tokens":11}}`,
			wantResp: domain.LLMChatResponse{
				Content: "General Kenobi",
				Usage:   domain.LLMUsage{PromptTokens: 8, CompletionTokens: 3, TotalTokens: 11},
			},
		},
		"sampling-parameters": {
			req: domain.LLMChatRequest{
				Model:       "ai/qwen3",
				Temperature: &temperature,
				MaxTokens:   &maxTokens,
				Messages: []domain.LLMChatMessage{
					{Role: "system", Content: "be brief"},
					{Role: "user", Content: "hi"},
				},
			},
			status:   http.StatusOK,
			response: `{"choices":[{"message":{"content":"hi"}}]}`,
			wantReq: func(t *testing.T, req completionRequest) {
				assert.False(t, req.Stream)
				require.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.2, *req.Temperature, 1e-9)
				require.NotNil(t, req.MaxTokens)
				assert.Equal(t, 64, *req.MaxTokens)
				assert.Nil(t, req.TopP)
				assert.Equal(t, []completionMessage{{Role: "system", Content: "be brief"}, {Role: "user", Content: "hi"}}, req.Messages)
			},
			wantResp: domain.LLMChatResponse{Content: "hi"},
		},
		"no-choices": {
			req:        helloRequest,
			status:     http.StatusOK,
			response:   `{"choices":[]}`,
			wantErrMsg: "model returned no choices",
		},
		"server-error": {
			req:        helloRequest,
			status:     http.StatusInternalServerError,
			response:   `boom`,
			wantErrMsg: "500 Internal Server Error: boom",
		},
		"invalid-json": {
			req:        helloRequest,
			status:     http.StatusOK,
			response:   `{invalid`,
			wantErrMsg: "decode /v1/chat/completions response",
		},
		"missing-model": {
			req:        domain.LLMChatRequest{Messages: helloRequest.Messages},
			wantErrMsg: "model is required",
		},
		"missing-messages": {
			req:        domain.LLMChatRequest{Model: "ai/qwen3"},
			wantErrMsg: "at least one message is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
				var req completionRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				if tt.wantReq != nil {
					tt.wantReq(t, req)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			llm := NewLLMClient(NewClient(server.URL, "key-1", server.Client()))
			resp, err := llm.Chat(context.Background(), tt.req)
			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp)
		})
	}
}

func TestEstimatePromptTokens(t *testing.T) {
	messages := []completionMessage{
		{Role: "system", Content: "route " + strings.Repeat("word ", 9)},
		{Role: "user", Content: ""},
	}
	// (4 + 10) + (4 + 0) words at 1.3 tokens each.
	assert.Equal(t, 23, estimatePromptTokens(messages))
}

func TestInitLLMClient_Initialize(t *testing.T) {
	_, err := InitLLMClient{LLMHost: "http://localhost:12434", APIKey: "-", HttpClient: http.DefaultClient}.Initialize(context.Background())
	require.NoError(t, err)

	llm, err := depend.Resolve[domain.LLMClient]()
	require.NoError(t, err)
	assert.IsType(t, LLMClient{}, llm)
}
