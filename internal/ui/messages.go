package ui

// Messages that target a panel carry its ID; an empty ID targets the focused panel.

// GenerateMsg asks a panel to encode its current input.
type GenerateMsg struct {
	PanelID string
}

// ShowSaveMsg opens the save prompt for a panel. Ignored while the panel has
// no image (the Save button is disabled).
type ShowSaveMsg struct {
	PanelID string
}

// SaveMsg is sent by the save prompt. An empty Path means the prompt was
// cancelled.
type SaveMsg struct {
	PanelID string
	Path    string
}

// FocusNextMsg moves focus to the next panel.
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous panel.
type FocusPrevMsg struct{}

// ScrollMsg scrolls the panel list by whole pages (negative is up).
type ScrollMsg struct {
	Pages int
}

// DismissModalMsg closes the top dialog.
type DismissModalMsg struct{}
