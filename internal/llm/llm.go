// Package llm wraps the chat-completion providers behind one interface.
package llm

import (
	"context"
	"errors"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	ErrMissingAPIKey   = errors.New("llm: api key is not configured")
	ErrEmptyCompletion = errors.New("llm: provider returned no content")
	ErrNoMessages      = errors.New("llm: at least one message is required")
)

type Message struct {
	Role    string
	Content string
}

type Options struct {
	MaxTokens   int
	Temperature float32
	// JSON asks the provider to return a single JSON object.
	JSON bool
}

type Completer interface {
	Complete(ctx context.Context, system string, messages []Message, opts Options) (string, error)
}
