package domain

import "context"

// LLMClient defines the interface for interacting with an OpenAI-compatible chat model.
type LLMClient interface {
	// ChatStream streams assistant output as events from an LLM server.
	// It calls onEvent with each event (delta, done) and returns any error.
	ChatStream(ctx context.Context, req LLMChatRequest, onEvent LLMStreamEventCallback) error

	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
}
