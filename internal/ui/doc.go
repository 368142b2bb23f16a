// Package ui is the terminal window: a scrollable stack of independent QR
// panels built from Bubble Tea views, with dialogs on an overlay stack.
//
// Core pieces:
//   - View: Elm-style unit with its own Init/Update/View
//   - PanelView: one QR panel (input line, Generate/Save buttons, preview)
//   - WindowModel: hosts the panels in a viewport and routes messages
//   - FocusManager: rotates focus across panels
//   - OverlayStack: modal dialogs (warnings, errors, save prompt)
//   - KeybindRegistry/KeyHandler: key dispatch and the help bar
package ui
