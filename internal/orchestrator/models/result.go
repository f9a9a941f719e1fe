package models

// ToolResult is the tagged outcome of a tool call: either a success value or
// a failure message. The zero value is a failure with an empty message.
type ToolResult struct {
	ok      bool
	value   string
	message string
}

// Success wraps a handler's return value.
func Success(value string) ToolResult {
	return ToolResult{ok: true, value: value}
}

// Failure wraps a handler's error text.
func Failure(message string) ToolResult {
	return ToolResult{message: message}
}

// OK reports whether the result is a success.
func (r ToolResult) OK() bool { return r.ok }

// Value returns the success value, or "" for failures.
func (r ToolResult) Value() string { return r.value }

// Message returns the failure message, or "" for successes.
func (r ToolResult) Message() string { return r.message }

// String renders the result the way it is shown to an operator.
func (r ToolResult) String() string {
	if r.ok {
		return r.value
	}
	return r.message
}

// Payload returns the map sent back to the model: {"result": v} or {"error": m}.
func (r ToolResult) Payload() map[string]any {
	if r.ok {
		return map[string]any{"result": r.value}
	}
	return map[string]any{"error": r.message}
}
