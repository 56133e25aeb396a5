// Package llm provides the conversation types and the chat completion client.
package llm

import "context"

// Roles accepted in a conversation. Order within a conversation is
// chronological; a system message, if present, must come first.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message models a single conversation turn.
type Message struct {
	Role    string
	Content string
}

// GenerationConfig captures the per-call generation knobs. Immutable once a
// request is built.
type GenerationConfig struct {
	Model       string
	Temperature float32
}

// Usage reports the token accounting returned by the service.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the unwrapped result of a chat completion call. Content holds
// the first choice's text; the remaining fields preserve the response envelope
// for observability.
type Completion struct {
	Content      string
	ID           string
	Model        string
	FinishReason string
	Usage        Usage
}

// Client abstracts a chat completion backend so callers and tests can
// substitute a deterministic implementation.
type Client interface {
	Complete(ctx context.Context, messages []Message, cfg GenerationConfig) (*Completion, error)
}

// ValidRole reports whether role is one of the supported values.
func ValidRole(role string) bool {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}
