// Package ux provides terminal output styling and the console renderers
// for graphs and traversal results.
package ux

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorPath    = lipgloss.Color("#E06C75") // discovered paths
	ColorNode    = lipgloss.Color("#61AFEF") // node identifiers
	ColorSuccess = lipgloss.Color("#98C379")
	ColorWarning = lipgloss.Color("#E5C07B")
	ColorError   = lipgloss.Color("#E06C75")
	ColorMuted   = lipgloss.Color("#5C6370") // arrows, traces, hints
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Node    lipgloss.Style
	Path    lipgloss.Style
	Arrow   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true),
	Node:    lipgloss.NewStyle().Foreground(ColorNode),
	Path:    lipgloss.NewStyle().Bold(true).Foreground(ColorPath),
	Arrow:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
}
