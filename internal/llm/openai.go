package llm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultModel is the cost-effective identifier used when a request does not
// name a model.
const DefaultModel = openai.GPT4oMini

// chatCompleter is the subset of the SDK client used here. Kept narrow so
// tests can substitute a deterministic fake.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIConfig configures the OpenAI-backed client.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // override for local stubs; defaults to the public API
	Model      string
	HTTPClient *http.Client
}

// OpenAIClient implements Client using the OpenAI chat completions API.
type OpenAIClient struct {
	api    chatCompleter
	model  string
	logger *zap.Logger
}

// NewOpenAIClient constructs an OpenAI-backed completion client. The API key
// is required; its absence is an authentication error surfaced at startup.
func NewOpenAIClient(cfg OpenAIConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, NewError(ErrCodeAuthentication, "openai: api key is required", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		sdkCfg.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIClient{
		api:    openai.NewClientWithConfig(sdkCfg),
		model:  model,
		logger: logger,
	}, nil
}

// Complete sends the conversation in a single round trip and returns the first
// choice's text. The full response envelope is preserved in the returned
// Completion.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, cfg GenerationConfig) (*Completion, error) {
	if len(messages) == 0 {
		return nil, NewError(ErrCodeInvalidArgument, "conversation must not be empty", nil)
	}

	model := cfg.Model
	if model == "" {
		model = c.model
	}

	apiMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		apiMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	// The SDK omits a zero temperature from the payload, which would fall
	// back to the service default of 1.0. Substitute the smallest
	// representable value so an explicit 0 stays deterministic.
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("model", model),
	)
	log.Debug("sending chat completion", zap.Int("messages", len(apiMessages)))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    apiMessages,
		Temperature: temperature,
	})
	if err != nil {
		mapped := mapOpenAIError(err)
		log.Error("chat completion failed", zap.Error(mapped))
		return nil, mapped
	}

	if len(resp.Choices) == 0 {
		mrErr := NewError(ErrCodeMalformedResponse, "response contains no choices", nil)
		log.Error("chat completion failed", zap.Error(mrErr))
		return nil, mrErr
	}
	choice := resp.Choices[0]

	log.Info("chat completion succeeded",
		zap.String("finish_reason", string(choice.FinishReason)),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return &Completion{
		Content:      choice.Message.Content,
		ID:           resp.ID,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// mapOpenAIError translates SDK and network errors into typed Error values.
func mapOpenAIError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewError(ErrCodeTransport, "request timed out or cancelled", err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return NewError(ErrCodeAuthentication, apiErr.Message, err)
		}
		return NewError(ErrCodeTransport, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized {
			return NewError(ErrCodeAuthentication, "authentication rejected", err)
		}
		return NewError(ErrCodeTransport, "request failed", err)
	}

	return NewError(ErrCodeTransport, "openai request failed", err)
}

var _ Client = (*OpenAIClient)(nil)
