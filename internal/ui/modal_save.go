package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SaveModal asks where to write a panel's PNG, prefilled with the default
// filename. Enter saves; Esc cancels without touching the panel.
type SaveModal struct {
	PanelID string
	title   string
	input   textinput.Model
}

// Ensure SaveModal implements View.
var _ View = (*SaveModal)(nil)

// NewSaveModal creates a save prompt for a panel.
func NewSaveModal(panelID, panelTitle, defaultName string) *SaveModal {
	ti := textinput.New()
	ti.Placeholder = "path/to/qrcode.png"
	ti.Width = 40
	ti.SetValue(defaultName)
	ti.CursorEnd()
	ti.Focus()
	return &SaveModal{PanelID: panelID, title: panelTitle, input: ti}
}

// Path returns the path currently typed in the prompt.
func (m *SaveModal) Path() string {
	return strings.TrimSpace(m.input.Value())
}

// Init implements View.
func (m *SaveModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *SaveModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			// An empty path behaves like a cancelled file dialog.
			path := m.Path()
			id := m.PanelID
			return m, func() tea.Msg { return SaveMsg{PanelID: id, Path: path} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *SaveModal) View() string {
	content := Styles.Title.Render("Save "+m.title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("PNG files (*.png)  Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}
