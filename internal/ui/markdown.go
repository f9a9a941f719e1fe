package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWrapWidth = 100

// NewMarkdownRenderer returns a glamour renderer that picks its style from
// the terminal background.
func NewMarkdownRenderer(width int) (MarkdownRenderer, error) {
	if width <= 0 {
		width = defaultWrapWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RenderMarkdown renders text, falling back to the raw text when no renderer
// is set or rendering fails.
func RenderMarkdown(text string, renderer MarkdownRenderer) string {
	if renderer == nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
