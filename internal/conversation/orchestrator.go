// Package conversation wires the request builder, transcript, and completion
// client together for the interactive chat workflow.
package conversation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"chat-cli/internal/llm"
	"chat-cli/internal/prompt"
	"chat-cli/internal/session"
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSystemPrompt sets the behavioral context prepended to every
// conversation. Blank values leave the conversation without system context.
func WithSystemPrompt(content string) Option {
	return func(o *Orchestrator) {
		o.systemPrompt = strings.TrimSpace(content)
	}
}

// Orchestrator runs one chat turn at a time, threading the transcript so each
// call sees the prior turns.
type Orchestrator struct {
	builder      *prompt.Builder
	transcript   *session.Transcript
	client       llm.Client
	logger       *zap.Logger
	systemPrompt string
}

// New constructs an Orchestrator with the required dependencies.
func New(builder *prompt.Builder, transcript *session.Transcript, client llm.Client, logger *zap.Logger, opts ...Option) (*Orchestrator, error) {
	if builder == nil {
		return nil, errors.New("conversation: builder is required")
	}
	if transcript == nil {
		return nil, errors.New("conversation: transcript is required")
	}
	if client == nil {
		return nil, errors.New("conversation: llm client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	o := &Orchestrator{builder: builder, transcript: transcript, client: client, logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Ask runs a single user turn: prior history plus the new user message go to
// the completion client, and on success both the user and assistant turns are
// appended to the transcript. Errors propagate to the caller untouched.
func (o *Orchestrator) Ask(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", llm.NewError(llm.ErrCodeInvalidArgument, "input text must not be empty", nil)
	}

	history := o.transcript.Messages()
	userMessage := llm.Message{Role: llm.RoleUser, Content: input}

	messages := make([]llm.Message, 0, len(history)+2)
	if o.systemPrompt != "" {
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: o.systemPrompt})
	}
	messages = append(messages, history...)
	messages = append(messages, userMessage)

	req, err := o.builder.FromMessages(messages)
	if err != nil {
		return "", err
	}

	log := o.logger.With(zap.Int("turns", len(req.Messages)))
	log.Debug("handling chat turn")

	result, err := o.client.Complete(ctx, req.Messages, req.Config)
	if err != nil {
		log.Error("chat turn failed", zap.Error(err))
		return "", err
	}

	o.transcript.Append(userMessage)
	if result.Content != "" {
		o.transcript.Append(llm.Message{Role: llm.RoleAssistant, Content: result.Content})
	}

	log.Info("chat turn completed",
		zap.String("model", result.Model),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return result.Content, nil
}
