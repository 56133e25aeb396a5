// Package prompt assembles caller intent into validated completion requests.
package prompt

import (
	"fmt"
	"strings"

	"chat-cli/internal/llm"
)

// Request pairs a validated conversation with its generation config, ready for
// the completion client.
type Request struct {
	Messages []llm.Message
	Config   llm.GenerationConfig
}

// Option overrides a builder default for a single request.
type Option func(*llm.GenerationConfig)

// WithModel overrides the model for this request. Blank values are ignored.
func WithModel(model string) Option {
	return func(cfg *llm.GenerationConfig) {
		if strings.TrimSpace(model) != "" {
			cfg.Model = model
		}
	}
}

// WithTemperature overrides the sampling temperature for this request.
func WithTemperature(t float32) Option {
	return func(cfg *llm.GenerationConfig) {
		cfg.Temperature = t
	}
}

// BuilderConfig defines the defaults applied to every request.
type BuilderConfig struct {
	DefaultModel       string
	DefaultTemperature float32
}

// Builder turns caller intent into well-formed conversation/config pairs. All
// validation happens here, before any network activity.
type Builder struct {
	cfg BuilderConfig
}

// NewBuilder creates a Builder using the supplied defaults.
func NewBuilder(cfg BuilderConfig) (*Builder, error) {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = llm.DefaultModel
	}
	if err := validateTemperature(cfg.DefaultTemperature); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg}, nil
}

// Single wraps promptText as a conversation of exactly one user message with
// no system context.
func (b *Builder) Single(promptText string, opts ...Option) (Request, error) {
	if strings.TrimSpace(promptText) == "" {
		return Request{}, llm.NewError(llm.ErrCodeInvalidArgument, "prompt must not be empty", nil)
	}

	cfg, err := b.config(opts)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: promptText}},
		Config:   cfg,
	}, nil
}

// FromMessages validates a caller-supplied conversation and passes it through
// unchanged. This is the context-aware entry point: the caller maintains
// multi-turn history and an optional leading system message.
func (b *Builder) FromMessages(messages []llm.Message, opts ...Option) (Request, error) {
	if len(messages) == 0 {
		return Request{}, llm.NewError(llm.ErrCodeInvalidArgument, "conversation must contain at least one message", nil)
	}

	for i, msg := range messages {
		if !llm.ValidRole(msg.Role) {
			return Request{}, llm.NewError(llm.ErrCodeInvalidArgument, fmt.Sprintf("message %d has unknown role %q", i, msg.Role), nil)
		}
		if msg.Content == "" {
			return Request{}, llm.NewError(llm.ErrCodeInvalidArgument, fmt.Sprintf("message %d has empty content", i), nil)
		}
		if msg.Role == llm.RoleSystem && i != 0 {
			return Request{}, llm.NewError(llm.ErrCodeInvalidArgument, fmt.Sprintf("system message must be the first element, found at position %d", i), nil)
		}
	}

	cfg, err := b.config(opts)
	if err != nil {
		return Request{}, err
	}

	out := make([]llm.Message, len(messages))
	copy(out, messages)

	return Request{Messages: out, Config: cfg}, nil
}

func (b *Builder) config(opts []Option) (llm.GenerationConfig, error) {
	cfg := llm.GenerationConfig{
		Model:       b.cfg.DefaultModel,
		Temperature: b.cfg.DefaultTemperature,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateTemperature(cfg.Temperature); err != nil {
		return llm.GenerationConfig{}, err
	}
	return cfg, nil
}

func validateTemperature(t float32) error {
	if t < 0 || t > 1 {
		return llm.NewError(llm.ErrCodeInvalidArgument, fmt.Sprintf("temperature %.2f outside [0.0, 1.0]", t), nil)
	}
	return nil
}
