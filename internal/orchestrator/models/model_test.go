package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_ToolCallsAndText(t *testing.T) {
	msg := Message{
		Role: RoleModel,
		Parts: []Part{
			{Text: "Let me look. "},
			{ToolCall: &ToolCall{Name: "list_directory"}},
			{Text: "Then read."},
			{ToolCall: &ToolCall{Name: "read_file", Args: map[string]any{"file_path": "main.py"}}},
		},
	}

	calls := msg.ToolCalls()
	assert.Len(t, calls, 2)
	assert.Equal(t, "list_directory", calls[0].Name)
	assert.Equal(t, "read_file", calls[1].Name)
	assert.Equal(t, "Let me look. Then read.", msg.Text())
}

func TestMessage_Empty(t *testing.T) {
	msg := Message{Role: RoleModel}
	assert.Empty(t, msg.ToolCalls())
	assert.Empty(t, msg.Text())
}

func TestToolResult(t *testing.T) {
	ok := Success("STDOUT: hi")
	assert.True(t, ok.OK())
	assert.Equal(t, "STDOUT: hi", ok.Value())
	assert.Empty(t, ok.Message())
	assert.Equal(t, map[string]any{"result": "STDOUT: hi"}, ok.Payload())

	fail := Failure("unknown function: x")
	assert.False(t, fail.OK())
	assert.Empty(t, fail.Value())
	assert.Equal(t, "unknown function: x", fail.Message())
	assert.Equal(t, "unknown function: x", fail.String())
	assert.Equal(t, map[string]any{"error": "unknown function: x"}, fail.Payload())

	var zero ToolResult
	assert.False(t, zero.OK())
}
