package domain

// LLMChatRole is the role of a chat message sent to the LLM.
type LLMChatRole string

const (
	LLMChatRole_System    LLMChatRole = "system"
	LLMChatRole_User      LLMChatRole = "user"
	LLMChatRole_Assistant LLMChatRole = "assistant"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role    LLMChatRole
	Content string
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	Stream   bool
	// Optional parameters.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
