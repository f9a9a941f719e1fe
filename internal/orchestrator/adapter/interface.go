package adapter

import (
	"context"

	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
)

// Tool represents a capability the agent can use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Definition returns the structured tool definition for the provider
	Definition() provider.ToolDefinition

	// Execute runs the tool with the arguments the model supplied plus the
	// reserved working_directory key.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
