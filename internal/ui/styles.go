package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt  lipgloss.Style
	call    lipgloss.Style
	result  lipgloss.Style
	usage   lipgloss.Style
	warning lipgloss.Style
	header  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt:  r.NewStyle().Bold(true),
		call:    r.NewStyle().Foreground(lipgloss.Color("39")),
		result:  r.NewStyle().Foreground(lipgloss.Color("241")),
		usage:   r.NewStyle().Foreground(lipgloss.Color("241")),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		header:  r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}
