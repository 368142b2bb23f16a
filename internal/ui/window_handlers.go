package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"qrpanels/internal/qr"
)

// handleResize fits the viewport and the panels' input fields to the terminal.
func (a *windowAdapter) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	a.viewport.Width = msg.Width
	a.viewport.Height = a.viewportHeight()
	for _, pv := range a.Panels {
		pv.SetWidth(msg.Width)
	}
	a.refresh()
	return a, nil
}

// handleGenerate syncs the panel's input from its text field and encodes it.
// Failures are shown by the panel's reporter as dialogs.
func (a *windowAdapter) handleGenerate(msg GenerateMsg) (tea.Model, tea.Cmd) {
	pv := a.panel(msg.PanelID)
	if pv == nil {
		return a, nil
	}
	pv.SyncInput()
	err := pv.Panel.Generate(a.ctx)
	switch {
	case err == nil:
		code := pv.Panel.Code()
		a.setStatus(fmt.Sprintf("%s: version %d, %d bytes", pv.Panel.Title, code.Version(), len(code.Content())), false)
	case errors.Is(err, qr.ErrEmptyInput):
		a.setStatus("", false)
	default:
		a.setStatus(fmt.Sprintf("%s: %v", pv.Panel.Title, err), true)
	}
	a.refresh()
	return a, nil
}

// handleShowSave opens the save prompt, unless the panel has nothing to save.
func (a *windowAdapter) handleShowSave(msg ShowSaveMsg) (tea.Model, tea.Cmd) {
	pv := a.panel(msg.PanelID)
	if pv == nil || !pv.Panel.CanSave() {
		return a, nil
	}
	modal := NewSaveModal(pv.Panel.ID, pv.Panel.Title, a.DefaultFilename)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleSave closes the save prompt and writes the file. Write errors are
// reported by the panel as an error dialog; the image is kept for a retry.
func (a *windowAdapter) handleSave(msg SaveMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if _, isSave := top.View.(*SaveModal); isSave {
			a.Overlays.Pop()
		}
	}
	pv := a.panel(msg.PanelID)
	if pv == nil || msg.Path == "" {
		return a, a.refocus()
	}
	if err := pv.Panel.Save(a.ctx, msg.Path); err != nil {
		a.setStatus(fmt.Sprintf("%s: %v", pv.Panel.Title, err), true)
		return a, nil
	}
	a.setStatus(fmt.Sprintf("%s saved to %s", pv.Panel.Title, msg.Path), false)
	return a, a.refocus()
}

// handleDismissModal closes the top dialog and returns focus to the panel.
func (a *windowAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if a.Overlays.Len() > 0 {
		return a, nil
	}
	return a, a.refocus()
}

func (a *windowAdapter) handleScroll(msg ScrollMsg) (tea.Model, tea.Cmd) {
	for i := 0; i < msg.Pages; i++ {
		a.viewport.PageDown()
	}
	for i := 0; i > msg.Pages; i-- {
		a.viewport.PageUp()
	}
	return a, nil
}

// refocus restarts the focused panel's cursor after a dialog closes.
func (a *windowAdapter) refocus() tea.Cmd {
	if pv := a.focused(); pv != nil {
		return pv.Focus()
	}
	return nil
}
