package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it mirrors tea.Model but returns a View
// from Update so containers can keep concrete types.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
