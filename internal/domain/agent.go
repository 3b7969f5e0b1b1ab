package domain

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// StreamEndSentinel is the text frame a streaming client sends when it has no more binary data.
const StreamEndSentinel = "<FIN>"

// MessageRole identifies the author of a message.
type MessageRole string

const (
	MessageRole_User      MessageRole = "user"
	MessageRole_Assistant MessageRole = "assistant"
	MessageRole_System    MessageRole = "system"
)

// DefaultMessageFormat is the format used when a message does not declare one.
const DefaultMessageFormat = "text"

// BinaryData describes binary content attached to a message.
type BinaryData struct {
	MimeType     string  `json:"mimeType"`
	DataAsBase64 *string `json:"dataAsBase64,omitempty"`
	Source       *string `json:"source,omitempty"`
}

// Message is a single conversation entry.
type Message struct {
	Role       MessageRole  `json:"role"`
	Content    string       `json:"content"`
	Format     string       `json:"format"`
	TurnID     *string      `json:"turnId,omitempty"`
	BinaryData []BinaryData `json:"binaryData,omitempty"`
}

// UnmarshalJSON applies the default format when it is missing.
func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	aux := plain{Format: DefaultMessageFormat}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Message(aux)
	return nil
}

// NewUserMessage creates a text message authored by the user.
func NewUserMessage(content string, turnID *string) Message {
	return Message{Role: MessageRole_User, Content: content, Format: DefaultMessageFormat, TurnID: turnID}
}

// NewAssistantMessage creates a text message authored by the assistant.
func NewAssistantMessage(content string, turnID *string) Message {
	return Message{Role: MessageRole_Assistant, Content: content, Format: DefaultMessageFormat, TurnID: turnID}
}

// AnonymizationEntity maps a sensitive value to the replacement shown to agents.
type AnonymizationEntity struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Replacement string `json:"replacement"`
}

// ConversationContext identifies the conversation a request belongs to.
type ConversationContext struct {
	ConversationID        string                `json:"conversationId"`
	TurnID                *string               `json:"turnId,omitempty"`
	AnonymizationEntities []AnonymizationEntity `json:"anonymizationEntities,omitempty"`
}

// ContextEntry is a key/value pair of system or user profile context.
type ContextEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UserContext carries information about the calling user.
type UserContext struct {
	UserID    *string        `json:"userId,omitempty"`
	UserToken *string        `json:"userToken,omitempty"`
	Profile   []ContextEntry `json:"profile,omitempty"`
}

// AgentRequest is the payload sent to an agent.
type AgentRequest struct {
	Messages            []Message           `json:"messages"`
	ConversationContext ConversationContext `json:"conversationContext"`
	SystemContext       []ContextEntry      `json:"systemContext,omitempty"`
	UserContext         *UserContext        `json:"userContext,omitempty"`
}

// Validate checks the fields every agent relies on.
func (r AgentRequest) Validate() error {
	if strings.TrimSpace(r.ConversationContext.ConversationID) == "" {
		return NewValidationErr("conversationContext.conversationId is required")
	}
	return nil
}

// LastUserMessage returns the most recent message authored by the user.
func (r AgentRequest) LastUserMessage() (Message, bool) {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == MessageRole_User {
			return r.Messages[i], true
		}
	}
	return Message{}, false
}

// CurrentTurnID returns the turn of the request. It prefers the conversation turn,
// then the last message turn, then the message count.
func (r AgentRequest) CurrentTurnID() string {
	if r.ConversationContext.TurnID != nil {
		return *r.ConversationContext.TurnID
	}
	if n := len(r.Messages); n > 0 && r.Messages[n-1].TurnID != nil {
		return *r.Messages[n-1].TurnID
	}
	return strconv.Itoa(len(r.Messages))
}

// AgentResult is the payload an agent call produces for the client.
type AgentResult struct {
	Status                *string               `json:"status,omitempty"`
	ResponseTime          float64               `json:"responseTime"`
	Messages              []Message             `json:"messages"`
	AnonymizationEntities []AnonymizationEntity `json:"anonymizationEntities,omitempty"`
}

// RequestEnvelope pairs an optional agent name with the request payload.
type RequestEnvelope struct {
	AgentName *string      `json:"agentName"`
	Payload   AgentRequest `json:"payload"`
}

// ParseRequestEnvelope decodes and validates a request envelope.
func ParseRequestEnvelope(data []byte) (RequestEnvelope, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return RequestEnvelope{}, NewValidationErr("invalid request envelope: " + err.Error())
	}
	if err := env.Payload.Validate(); err != nil {
		return RequestEnvelope{}, err
	}
	return env, nil
}

// AgentCall is everything an agent receives for one execution.
type AgentCall struct {
	Request AgentRequest
	TurnID  string
	// Inbound carries binary data the client streams alongside the request.
	Inbound *DataStream
}

// AgentOutput is the final outcome of an agent execution.
type AgentOutput struct {
	Status         string
	Message        Message
	UserTranscript *string
	// Data is optional binary content to send back to the client.
	Data *DataStream
}

// MessagePublisher lets an agent send intermediate messages before its final output.
type MessagePublisher func(ctx context.Context, msg Message) error

// Agent is a conversational agent.
type Agent interface {
	// Name returns the unique agent name.
	Name() string
	// Description returns a human readable description of what the agent handles.
	Description() string
	// Execute runs the agent for one turn.
	Execute(ctx context.Context, call AgentCall, publish MessagePublisher) (AgentOutput, error)
}

// AgentProvider gives access to the registered agents.
type AgentProvider interface {
	// ListAgents returns all agents in registration order.
	ListAgents() []Agent
	// GetAgent returns the agent with the given name.
	GetAgent(name string) (Agent, bool)
}

// AgentResolver picks an agent when the caller did not name one that exists.
type AgentResolver interface {
	ResolveAgent(ctx context.Context, agentName *string, req AgentRequest) (Agent, bool, error)
}
