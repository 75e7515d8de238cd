package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
)

// stat is one labelled value in a summary box
type stat struct {
	label string
	value any
}

// renderSummary draws a titled box of aligned label/value rows
func renderSummary(title string, stats []stat) string {
	width := 0
	for _, s := range stats {
		if len(s.label) > width {
			width = len(s.label)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, s := range stats {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, s.label)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprint(s.value)))
	}
	return statsBoxStyle.Render(b.String())
}
