package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the help bar shown under the panels. Bindings
// that do not fit in width wrap onto further lines instead of being cut off.
// A width of zero or less renders a single line.
func RenderKeybindHelp(reg *KeybindRegistry, width int) string {
	if reg == nil {
		return ""
	}
	km := NewKeyMap(reg)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	if width <= 0 {
		return helpModel.ShortHelpView(bindings)
	}

	var lines []string
	var line []key.Binding
	for _, b := range bindings {
		next := append(line[:len(line):len(line)], b)
		if len(line) > 0 && lipgloss.Width(helpModel.ShortHelpView(next)) > width {
			lines = append(lines, helpModel.ShortHelpView(line))
			line = []key.Binding{b}
			continue
		}
		line = next
	}
	if len(line) > 0 {
		lines = append(lines, helpModel.ShortHelpView(line))
	}
	return strings.Join(lines, "\n")
}
