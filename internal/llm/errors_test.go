package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrCodeTransport, "connection failed", errors.New("dial tcp: refused"))
	assert.Equal(t, "connection failed: dial tcp: refused", err.Error())

	bare := NewError(ErrCodeInvalidArgument, "prompt must not be empty", nil)
	assert.Equal(t, "prompt must not be empty", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewError(ErrCodeMalformedResponse, "no choices", cause)

	require.ErrorIs(t, err, cause)
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		code  string
		check func(error) bool
	}{
		{ErrCodeInvalidArgument, IsInvalidArgument},
		{ErrCodeAuthentication, IsAuthentication},
		{ErrCodeTransport, IsTransport},
		{ErrCodeMalformedResponse, IsMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := NewError(tt.code, "boom", nil)
			assert.True(t, tt.check(err))

			// A wrapped typed error is still classified correctly.
			wrapped := fmt.Errorf("outer: %w", err)
			assert.True(t, tt.check(wrapped))
		})
	}
}

func TestClassifiersRejectOtherErrors(t *testing.T) {
	assert.False(t, IsAuthentication(errors.New("plain")))
	assert.False(t, IsTransport(nil))
	assert.False(t, IsMalformedResponse(NewError(ErrCodeTransport, "boom", nil)))
}
