package orchestrator

import (
	"context"
	"errors"
	"fmt"

	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
)

// MockProvider implements provider.Provider for testing
type MockProvider struct {
	GenerateFunc func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error)
	calls        int
	requests     []*provider.GenerateRequest
}

func (m *MockProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	m.calls++
	m.requests = append(m.requests, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *MockProvider) GetModel() string {
	return "test-model"
}

// MockTool implements adapter.Tool for testing
type MockTool struct {
	name        string
	ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)
	lastArgs    map[string]any
	calls       int
}

func (m *MockTool) Name() string        { return m.name }
func (m *MockTool) Description() string { return "mock " + m.name }
func (m *MockTool) Definition() provider.ToolDefinition {
	return provider.ToolDefinition{Name: m.name, Description: m.Description()}
}

func (m *MockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	m.calls++
	m.lastArgs = args
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, args)
	}
	return "ok", nil
}

// recordingOutput implements ui.Output by recording every line. The echoed
// prompt is kept apart so line assertions only see the turns.
type recordingOutput struct {
	prompt string
	lines  []string
}

func (r *recordingOutput) WriteUserPrompt(prompt string) {
	r.prompt = prompt
}

func (r *recordingOutput) WriteToolCall(name string, args map[string]any) {
	r.lines = append(r.lines, "call "+name)
}

func (r *recordingOutput) WriteToolResult(result string) {
	r.lines = append(r.lines, "-> "+result)
}

func (r *recordingOutput) WriteUsage(promptTokens, responseTokens int) {
	r.lines = append(r.lines, fmt.Sprintf("usage %d/%d", promptTokens, responseTokens))
}

func (r *recordingOutput) WriteWarning(message string) {
	r.lines = append(r.lines, "warn "+message)
}

func (r *recordingOutput) WriteFinalAnswer(text string) {
	r.lines = append(r.lines, "final "+text)
}
