package gemini

import (
	"context"
	"sync"

	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
	mu        sync.RWMutex
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	if client == nil {
		panic("client is required")
	}
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends a request to the Gemini API and returns the response.
func (p *GeminiProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	p.mu.RUnlock()

	contents := toGeminiContents(req.History)
	config := toGeminiConfig(req.SystemInstruction, req.Tools)

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp, model)
}

// SetModel changes the active model.
func (p *GeminiProvider) SetModel(model string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
}

// GetModel returns the currently active model name.
func (p *GeminiProvider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}
