// Package modelrunner talks to an OpenAI-compatible model server such as Docker Model
// Runner or llama.cpp. It serves the text embeddings used for routing and the chat
// completions used by LLM-backed agents.
package modelrunner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	embeddingsPath      = "/engines/v1/embeddings"

	// maxEventLine bounds one server-sent event line; long completions arrive in many small ones.
	maxEventLine = 1 << 20
)

// apiKey maps the "-" config placeholder to no key.
func apiKey(configured string) string {
	if configured == "-" {
		return ""
	}
	return configured
}

// Client posts JSON requests to the model server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL. apiKey may be empty.
func NewClient(baseURL, apiKey string, httpClient *http.Client) Client {
	return Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

func (c Client) complete(ctx context.Context, req completionRequest) (completionResponse, error) {
	var out completionResponse
	if err := req.validate(); err != nil {
		return out, err
	}
	err := c.postJSON(ctx, chatCompletionsPath, req, &out)
	return out, err
}

// completeStream sends a streaming completion and hands every decoded chunk to onChunk
// until the server sends [DONE] or closes the stream.
func (c Client) completeStream(ctx context.Context, req completionRequest, onChunk func(completionChunk) error) error {
	if err := req.validate(); err != nil {
		return err
	}
	req.Stream = true

	resp, err := c.post(ctx, chatCompletionsPath, req, "text/event-stream")
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLine)
	for scanner.Scan() {
		data, ok := strings.CutPrefix(scanner.Text(), "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "" || data == "[DONE]" {
			return nil
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Malformed chunks are skipped.
			continue
		}
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c Client) embed(ctx context.Context, req embeddingRequest) (embeddingResponse, error) {
	var out embeddingResponse
	err := c.postJSON(ctx, embeddingsPath, req, &out)
	return out, err
}

func (c Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.post(ctx, path, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// post sends body and returns the response when the server answered with a 2xx status.
func (c Client) post(ctx context.Context, path string, body any, accept string) (*http.Response, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid model server URL: %w", err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close() //nolint:errcheck
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &statusError{path: path, status: resp.Status, body: strings.TrimSpace(string(detail))}
	}
	return resp, nil
}

type statusError struct {
	path   string
	status string
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned %s: %s", e.path, e.status, e.body)
}

var (
	errMissingModel    = errors.New("model is required")
	errMissingMessages = errors.New("at least one message is required")
)
