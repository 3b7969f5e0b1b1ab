package domain

// LLMStreamEventType represents the type of event in an LLM stream.
type LLMStreamEventType string

const (
	LLMStreamEventType_Delta LLMStreamEventType = "delta"
	LLMStreamEventType_Done  LLMStreamEventType = "done"
)

// LLMStreamEventDelta contains a text delta from the stream.
type LLMStreamEventDelta struct {
	Text string `json:"text"`
}

// LLMStreamEventDone contains completion metadata and token usage.
type LLMStreamEventDone struct {
	Usage       LLMUsage `json:"usage"`
	CompletedAt string   `json:"completed_at"`
}

// LLMStreamEventCallback is called for each event in the stream.
type LLMStreamEventCallback func(eventType LLMStreamEventType, data any) error
