package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/mitchellh/mapstructure"
)

// Validator is implemented by request types that check their own fields.
type Validator interface {
	Validate() error
}

// ToolExecutor runs a tool with a typed request.
type ToolExecutor[Req, Resp any] func(context.Context, *Req) (Resp, error)

// BaseAdapter decodes an argument map into Req, runs the executor and
// renders the response: fmt.Stringer responses as their text, anything
// else as JSON.
type BaseAdapter[Req, Resp any] struct {
	definition provider.ToolDefinition
	executor   ToolExecutor[Req, Resp]
}

func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	paramSchema *provider.ParameterSchema,
	executor ToolExecutor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	if executor == nil {
		panic("executor is required")
	}
	return &BaseAdapter[Req, Resp]{
		definition: provider.ToolDefinition{
			Name:        name,
			Description: description,
			Parameters:  paramSchema,
		},
		executor: executor,
	}
}

// Name implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.definition.Name
}

// Description implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.definition.Description
}

// Definition implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Definition() provider.ToolDefinition {
	return b.definition
}

// Execute implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &req,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	resp, err := b.executor(ctx, &req)
	if err != nil {
		return "", err
	}

	if s, ok := any(resp).(fmt.Stringer); ok {
		return s.String(), nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(data), nil
}
