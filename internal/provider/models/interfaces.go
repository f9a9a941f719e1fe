package models

import (
	"context"
)

// Provider defines the interface for the reasoning service backend.
type Provider interface {
	// Generate sends the full conversation and the tool declarations to the
	// model and returns its reply. Transport and API failures are returned as
	// *ProviderError; a reply without candidates matches ErrEmptyResponse.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GetModel returns the currently active model name.
	GetModel() string
}
