// Package session keeps the caller-owned conversation state threaded between
// completion calls. Nothing here touches disk; the transcript lives and dies
// with the process.
package session

import (
	"sync"

	"chat-cli/internal/llm"
)

// Transcript records conversation turns in chronological order. Safe for
// concurrent use.
type Transcript struct {
	mu       sync.Mutex
	messages []llm.Message
}

// New creates an empty Transcript.
func New() *Transcript {
	return &Transcript{}
}

// Append records one or more turns.
func (t *Transcript) Append(messages ...llm.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, messages...)
}

// Messages returns a copy of the recorded turns.
func (t *Transcript) Messages() []llm.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]llm.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports the number of recorded turns.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// Reset discards all recorded turns.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}
