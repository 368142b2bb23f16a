package ui

import "qrpanels/internal/panel"

// dialogReporter turns panel reports into modal dialogs on the window's
// overlay stack. Panels report synchronously from inside Update, so the
// push happens before the next frame is drawn.
type dialogReporter struct {
	overlays *OverlayStack
}

var _ panel.Reporter = dialogReporter{}

func (r dialogReporter) Warn(title, message string) {
	r.overlays.Push(Overlay{View: NewMessageModal(panel.SeverityWarning, title, message), Dismiss: "esc"})
}

func (r dialogReporter) Error(title, message string) {
	r.overlays.Push(Overlay{View: NewMessageModal(panel.SeverityError, title, message), Dismiss: "esc"})
}
