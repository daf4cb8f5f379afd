package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Provider is the interface that all AI providers must implement.
type Provider interface {
	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Complete sends the conversation and returns the complete response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Stream sends the conversation and writes the reply to w as it arrives.
	// It returns the full reply text.
	Stream(ctx context.Context, req *Request, w io.Writer) (string, error)
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoResponse is returned when the model produced no text.
var ErrNoResponse = errors.New("no response from model")

// Message is one turn of a conversation.
type Message struct {
	Role    string // RoleUser or RoleAssistant
	Content string
}

// Request represents an AI completion request.
type Request struct {
	// Messages is the conversation, oldest first. The last one is usually
	// the user's new message.
	Messages []Message

	// System is an optional system instruction (the persona prompt).
	System string

	// Model is an optional model override (if empty, uses provider default).
	Model string

	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Validate checks the request is sendable.
func (r *Request) Validate() error {
	if len(r.Messages) == 0 {
		return errors.New("request has no messages")
	}
	for i, m := range r.Messages {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
		if m.Content == "" {
			return fmt.Errorf("message %d: empty content", i)
		}
	}
	return nil
}

// Response represents an AI completion response.
type Response struct {
	// Content is the generated text.
	Content string

	// Model is the actual model that was used.
	Model string

	// Usage contains token counts.
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a request with the companion's generation defaults.
func NewRequest(messages []Message, system string) *Request {
	return &Request{
		Messages:    messages,
		System:      system,
		MaxTokens:   1500,
		Temperature: 0.85,
		TopP:        0.95,
	}
}
