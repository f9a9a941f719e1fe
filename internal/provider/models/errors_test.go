package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_MatchesSentinel(t *testing.T) {
	err := &ProviderError{Code: ErrorCodeEmptyResponse, Message: "no candidates in response"}

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.NotErrorIs(t, err, ErrNetwork)

	wrapped := fmt.Errorf("generate: %w", err)
	assert.ErrorIs(t, wrapped, ErrEmptyResponse)
}

func TestProviderError_UnwrapsUnderlying(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ProviderError{Code: ErrorCodeNetwork, Message: "network error", Underlying: cause, Retryable: true}

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "network_error: network error (connection reset)", err.Error())
	assert.True(t, IsRetryable(err))
	assert.False(t, IsRetryable(cause))
}
