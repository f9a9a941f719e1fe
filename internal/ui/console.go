package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Console writes run output to a terminal or a plain stream.
type Console struct {
	out      io.Writer
	verbose  bool
	renderer MarkdownRenderer
	styles   styles
}

// NewConsole creates a Console. Markdown rendering is enabled only when out
// is a terminal.
func NewConsole(out io.Writer, verbose bool) *Console {
	var renderer MarkdownRenderer
	if IsTerminal(out) {
		if r, err := NewMarkdownRenderer(defaultWrapWidth); err == nil {
			renderer = r
		}
	}
	return NewConsoleWithRenderer(out, verbose, renderer)
}

// NewConsoleWithRenderer creates a Console with an explicit renderer (nil for plain text).
func NewConsoleWithRenderer(out io.Writer, verbose bool, renderer MarkdownRenderer) *Console {
	if out == nil {
		panic("out is required")
	}
	return &Console{
		out:      out,
		verbose:  verbose,
		renderer: renderer,
		styles:   newStyles(lipgloss.NewRenderer(out)),
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Verbose reports whether the console shows arguments, results and usage.
func (c *Console) Verbose() bool {
	return c.verbose
}

func (c *Console) WriteUserPrompt(prompt string) {
	if !c.verbose {
		return
	}
	c.println(c.styles.prompt.Render("User prompt: " + prompt))
}

func (c *Console) WriteToolCall(name string, args map[string]any) {
	if !c.verbose {
		c.println(c.styles.call.Render(" - Calling function: " + name))
		return
	}
	c.println(c.styles.call.Render(fmt.Sprintf("Calling function: %s(%s)", name, FormatArgs(args))))
}

func (c *Console) WriteToolResult(result string) {
	if !c.verbose {
		return
	}
	c.println(c.styles.result.Render("-> " + result))
}

func (c *Console) WriteUsage(promptTokens, responseTokens int) {
	if !c.verbose {
		return
	}
	c.println(c.styles.usage.Render(fmt.Sprintf("Prompt tokens: %d", promptTokens)))
	c.println(c.styles.usage.Render(fmt.Sprintf("Response tokens: %d", responseTokens)))
}

func (c *Console) WriteWarning(message string) {
	c.println(c.styles.warning.Render(message))
}

func (c *Console) WriteFinalAnswer(text string) {
	c.println(c.styles.header.Render("Final response:"))
	c.println(RenderMarkdown(text, c.renderer))
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// FormatArgs renders tool arguments as compact JSON with sorted keys.
func FormatArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(data)
}
