package models

import (
	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/models"
)

// GenerateRequest encapsulates all parameters for a generation request.
type GenerateRequest struct {
	// SystemInstruction is sent as the model's system prompt
	SystemInstruction string

	// History contains the conversation history, oldest first
	History []models.Message

	// Tools contains tool definitions for native tool calling
	Tools []ToolDefinition
}

// GenerateResponse contains the model's reply and metadata.
type GenerateResponse struct {
	// Message is the reply content with role "model". It may hold text,
	// tool calls, both, or neither.
	Message models.Message

	// Metadata contains information about the generation
	Metadata ResponseMetadata
}

// ResponseMetadata contains information about the generation.
type ResponseMetadata struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int

	ModelUsed string
}

// ToolDefinition defines a tool that the model can invoke.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *ParameterSchema // Pointer to allow nil (no params)
}

// ParameterSchema maps directly to standard JSON Schema.
type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema defines a single parameter property.
type PropertySchema struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Enum        []string        `json:"enum,omitempty"`
	Items       *PropertySchema `json:"items,omitempty"`
}
