package orchestrator

import "github.com/Cyclone1070/sandboxagent/internal/orchestrator/models"

// NamedResult pairs a tool call with its outcome.
type NamedResult struct {
	Call   models.ToolCall
	Result models.ToolResult
}

// Translate packages one turn's results into a single tool message, one
// response part per result, in order.
func Translate(results []NamedResult) models.Message {
	parts := make([]models.Part, 0, len(results))
	for _, r := range results {
		parts = append(parts, models.Part{
			ToolResponse: &models.ToolResponse{
				ID:       r.Call.ID,
				Name:     r.Call.Name,
				Response: r.Result.Payload(),
			},
		})
	}
	return models.Message{Role: models.RoleTool, Parts: parts}
}
