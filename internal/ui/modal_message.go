package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrpanels/internal/panel"
)

// MessageModal is a warning or error dialog. Enter or Esc dismisses it.
type MessageModal struct {
	Severity   panel.Severity
	Title      string
	Message    string
	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure MessageModal implements View.
var _ View = (*MessageModal)(nil)

// NewMessageModal creates a dialog styled for sev.
func NewMessageModal(sev panel.Severity, title, message string) *MessageModal {
	m := &MessageModal{
		Severity:   sev,
		Title:      title,
		Message:    message,
		boxStyle:   Styles.BoxWarning,
		titleStyle: Styles.TitleWarning,
	}
	if sev == panel.SeverityError {
		m.boxStyle = Styles.BoxDanger
		m.titleStyle = Styles.TitleDanger
	}
	return m
}

// Init implements View.
func (m *MessageModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MessageModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *MessageModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Message)
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: close")
	return m.boxStyle.Render(content)
}
