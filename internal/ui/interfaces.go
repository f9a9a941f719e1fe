package ui

// Output is the user-facing side of a run: trace lines, token accounting,
// warnings and the final answer, all written to stdout.
type Output interface {
	// WriteUserPrompt echoes the prompt before the first turn (verbose only)
	WriteUserPrompt(prompt string)

	// WriteToolCall announces a dispatch before the handler runs
	WriteToolCall(name string, args map[string]any)

	// WriteToolResult shows the outcome of a dispatch (verbose only)
	WriteToolResult(result string)

	// WriteUsage shows per-reply token counts (verbose only)
	WriteUsage(promptTokens, responseTokens int)

	// WriteWarning shows a non-fatal condition such as the iteration cap
	WriteWarning(message string)

	// WriteFinalAnswer shows the model's answer
	WriteFinalAnswer(text string)
}

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
