package modelrunner

// Wire types of the OpenAI-compatible API. Only the fields the gateway reads are declared;
// server extensions such as "reasoning_content" are ignored on decode.

type completionRequest struct {
	Model         string              `json:"model"`
	Messages      []completionMessage `json:"messages"`
	Stream        bool                `json:"stream,omitempty"`
	StreamOptions *streamOptions      `json:"stream_options,omitempty"`
	Temperature   *float64            `json:"temperature,omitempty"`
	TopP          *float64            `json:"top_p,omitempty"`
	MaxTokens     *int                `json:"max_tokens,omitempty"`
}

func (r completionRequest) validate() error {
	if r.Model == "" {
		return errMissingModel
	}
	if len(r.Messages) == 0 {
		return errMissingMessages
	}
	return nil
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
	Usage *tokenUsage `json:"usage"`
}

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Usage   *tokenUsage   `json:"usage,omitempty"`
	Timings *llamaTimings `json:"timings,omitempty"`
}

type tokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// llamaTimings is where llama.cpp reports token counts when it omits usage.
type llamaTimings struct {
	PromptN    int `json:"prompt_n"`
	PredictedN int `json:"predicted_n"`
}

func (t llamaTimings) usage() tokenUsage {
	return tokenUsage{
		PromptTokens:     t.PromptN,
		CompletionTokens: t.PredictedN,
		TotalTokens:      t.PromptN + t.PredictedN,
	}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}
