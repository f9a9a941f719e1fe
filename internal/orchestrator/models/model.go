package models

import "strings"

// Role identifies the author of a message in the conversation history.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// Message represents a single message in the conversation history.
type Message struct {
	Role  Role
	Parts []Part
}

// Part is one element of a message. Exactly one field is set.
type Part struct {
	Text         string
	ToolCall     *ToolCall
	ToolResponse *ToolResponse
}

// ToolCall represents a structured tool invocation from the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResponse carries the outcome of one tool call back to the model.
// Response holds either a "result" or an "error" key.
type ToolResponse struct {
	ID       string
	Name     string
	Response map[string]any
}

// NewTextMessage creates a single-part text message.
func NewTextMessage(role Role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// ToolCalls returns the tool calls of the message in the order they appear.
func (m Message) ToolCalls() []ToolCall {
	var calls []ToolCall
	for _, p := range m.Parts {
		if p.ToolCall != nil {
			calls = append(calls, *p.ToolCall)
		}
	}
	return calls
}

// Text concatenates all text parts of the message.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
