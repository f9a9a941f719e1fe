package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/models"
	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

// toGeminiContents converts the conversation history to Gemini Content format.
func toGeminiContents(history []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))

	for _, msg := range history {
		content := messageToGeminiContent(msg)
		if content != nil {
			contents = append(contents, content)
		}
	}

	return contents
}

// messageToGeminiContent converts a single message to Gemini Content format.
// Gemini only knows "user" and "model"; tool results travel as user content.
func messageToGeminiContent(msg models.Message) *genai.Content {
	role := string(genai.RoleUser)
	if msg.Role == models.RoleModel {
		role = string(genai.RoleModel)
	}

	parts := make([]*genai.Part, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		switch {
		case p.ToolCall != nil:
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   p.ToolCall.ID,
					Name: p.ToolCall.Name,
					Args: p.ToolCall.Args,
				},
			})
		case p.ToolResponse != nil:
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       p.ToolResponse.ID,
					Name:     p.ToolResponse.Name,
					Response: p.ToolResponse.Response,
				},
			})
		case p.Text != "":
			parts = append(parts, genai.NewPartFromText(p.Text))
		}
	}

	// Skip empty messages
	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Role:  role,
		Parts: parts,
	}
}

// toGeminiConfig builds the request config from the system prompt and tools.
func toGeminiConfig(systemInstruction string, tools []provider.ToolDefinition) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
		Tools:          toGeminiTools(tools),
	}

	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	return config
}

// defaultSafetySettings returns safety settings with BLOCK_NONE for all categories.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdOff,
		},
	}
}

// toGeminiTools converts internal ToolDefinition to Gemini tools.
func toGeminiTools(tools []provider.ToolDefinition) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	functionDeclarations := make([]*genai.FunctionDeclaration, 0, len(tools))

	for _, tool := range tools {
		fd := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}

		if tool.Parameters != nil {
			fd.Parameters = toGeminiSchema(tool.Parameters)
		}

		functionDeclarations = append(functionDeclarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: functionDeclarations},
	}
}

// toGeminiSchema converts ParameterSchema to Gemini Schema.
func toGeminiSchema(params *provider.ParameterSchema) *genai.Schema {
	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if params.Properties != nil {
		schema.Properties = make(map[string]*genai.Schema, len(params.Properties))
		for name, prop := range params.Properties {
			schema.Properties[name] = toGeminiProperty(prop)
		}
	}

	if len(params.Required) > 0 {
		schema.Required = params.Required
	}

	return schema
}

func toGeminiProperty(prop provider.PropertySchema) *genai.Schema {
	s := &genai.Schema{
		Type:        toGeminiType(prop.Type),
		Description: prop.Description,
	}
	if len(prop.Enum) > 0 {
		s.Enum = prop.Enum
	}
	if prop.Items != nil {
		s.Items = toGeminiProperty(*prop.Items)
	}
	return s
}

// toGeminiType converts string type to Gemini Type.
func toGeminiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGeminiResponse converts Gemini response to internal format.
func fromGeminiResponse(resp *genai.GenerateContentResponse, modelUsed string) (*provider.GenerateResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.ProviderError{
			Code:      provider.ErrorCodeContentBlocked,
			Message:   "content blocked by safety filters",
			Retryable: false,
		}
	}

	return &provider.GenerateResponse{
		Message:  fromGeminiContent(candidate.Content),
		Metadata: buildMetadata(resp.UsageMetadata, modelUsed),
	}, nil
}

// fromGeminiContent converts candidate content to a model message, keeping
// part order. Function calls without an ID get a generated one.
func fromGeminiContent(content *genai.Content) models.Message {
	msg := models.Message{Role: models.RoleModel}
	if content == nil {
		return msg
	}

	for _, part := range content.Parts {
		if part == nil {
			continue
		}
		switch {
		case part.FunctionCall != nil:
			id := part.FunctionCall.ID
			if id == "" {
				id = uuid.NewString()
			}
			args := part.FunctionCall.Args
			if args == nil {
				args = map[string]any{}
			}
			msg.Parts = append(msg.Parts, models.Part{
				ToolCall: &models.ToolCall{
					ID:   id,
					Name: part.FunctionCall.Name,
					Args: args,
				},
			})
		case part.Text != "" && !part.Thought:
			msg.Parts = append(msg.Parts, models.Part{Text: part.Text})
		}
	}

	return msg
}

// buildMetadata builds response metadata from usage data.
func buildMetadata(usage *genai.GenerateContentResponseUsageMetadata, modelUsed string) provider.ResponseMetadata {
	metadata := provider.ResponseMetadata{
		ModelUsed: modelUsed,
	}

	if usage != nil {
		metadata.PromptTokens = int(usage.PromptTokenCount)
		metadata.CompletionTokens = int(usage.CandidatesTokenCount)
		metadata.TotalTokens = int(usage.TotalTokenCount)
	}

	return metadata
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := asAPIError(err); ok {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
				Retryable:  false,
			}
		case http.StatusNotFound:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeInvalidModel,
				Message:    fmt.Sprintf("model not found: %s", apiErr.Message),
				Underlying: err,
				Retryable:  false,
			}
		case http.StatusTooManyRequests:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
				Retryable:  true,
			}
		case http.StatusBadRequest:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
				Retryable:  false,
			}
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeUnavailable,
				Message:    "service unavailable",
				Underlying: err,
				Retryable:  true,
			}
		default:
			return &provider.ProviderError{
				Code:       provider.ErrorCodeNetwork,
				Message:    fmt.Sprintf("API error: %s", apiErr.Message),
				Underlying: err,
				Retryable:  true,
			}
		}
	}

	// Generic network error
	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}

// asAPIError extracts a genai.APIError whether it was returned by value or pointer.
func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
