package llm

import "context"

// CannedClient returns a fixed reply without any network activity. Useful for
// wiring tests and offline runs.
type CannedClient struct {
	Reply string
}

// NewCannedClient creates a CannedClient with the given reply.
func NewCannedClient(reply string) *CannedClient {
	return &CannedClient{Reply: reply}
}

// Complete validates the conversation and returns the canned reply.
func (c *CannedClient) Complete(_ context.Context, messages []Message, cfg GenerationConfig) (*Completion, error) {
	if len(messages) == 0 {
		return nil, NewError(ErrCodeInvalidArgument, "conversation must not be empty", nil)
	}
	return &Completion{
		Content:      c.Reply,
		Model:        cfg.Model,
		FinishReason: "stop",
	}, nil
}

var _ Client = (*CannedClient)(nil)
