package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrpanels/internal/panel"
	"qrpanels/internal/qr"
)

const (
	inputPlaceholder = "Enter a URL or text"
	inputPrompt      = "> "

	// panelChromeWidth is the border plus horizontal padding of Styles.Panel.
	panelChromeWidth = 4
)

// minInputWidth keeps the whole placeholder and the cursor visible.
var minInputWidth = len(inputPlaceholder) + 1

// PanelView draws one Panel: input line, Generate/Save buttons, preview.
// It owns the text field; the panel's input is synced from it on generate.
type PanelView struct {
	Panel *panel.Panel

	input       textinput.Model
	focused     bool
	previewSize int

	// rendered preview, rebuilt only when the panel's code changes
	preview     string
	previewCode *qr.Code
}

// Ensure PanelView implements View.
var _ View = (*PanelView)(nil)

// NewPanelView wraps p with a previewSize×previewSize preview area.
func NewPanelView(p *panel.Panel, previewSize int) *PanelView {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = inputPrompt
	v := &PanelView{
		Panel:       p,
		input:       ti,
		previewSize: previewSize,
		preview:     renderEmptyPreview(previewSize),
	}
	v.SetWidth(0)
	return v
}

// SetWidth fits the text field to a panel cols cells wide. The field never
// gets narrower than the preview or the placeholder.
func (v *PanelView) SetWidth(cols int) {
	w := cols - panelChromeWidth - len(inputPrompt)
	v.input.Width = max(w, v.previewSize, minInputWidth)
}

// InputWidth returns the width of the text field in cells.
func (v *PanelView) InputWidth() int {
	return v.input.Width
}

// Value returns the text currently in the input field.
func (v *PanelView) Value() string {
	return v.input.Value()
}

// SetValue replaces the text in the input field.
func (v *PanelView) SetValue(s string) {
	v.input.SetValue(s)
}

// Focus gives the input field keyboard focus.
func (v *PanelView) Focus() tea.Cmd {
	v.focused = true
	return v.input.Focus()
}

// Blur removes keyboard focus.
func (v *PanelView) Blur() {
	v.focused = false
	v.input.Blur()
}

// Focused reports whether the panel has focus.
func (v *PanelView) Focused() bool {
	return v.focused
}

// SyncInput copies the field's text into the panel.
func (v *PanelView) SyncInput() {
	v.Panel.SetInput(v.input.Value())
}

// Init implements View.
func (v *PanelView) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys reach the text field only while focused.
func (v *PanelView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View implements View.
func (v *PanelView) View() string {
	v.refreshPreview()

	frame := Styles.Panel
	if v.focused {
		frame = Styles.PanelFocused
	}

	saveStyle := Styles.ButtonDisabled
	if v.Panel.CanSave() {
		saveStyle = Styles.Button
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Button.Render("Generate"),
		"  ",
		saveStyle.Render("Save"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		Styles.PanelTitle.Render(v.Panel.Title),
		v.input.View(),
		"",
		buttons,
		"",
		v.preview,
	)
	return frame.Render(content)
}

func (v *PanelView) refreshPreview() {
	code := v.Panel.Code()
	if code == v.previewCode {
		return
	}
	v.previewCode = code
	if code == nil {
		v.preview = renderEmptyPreview(v.previewSize)
		return
	}
	v.preview = renderPreview(code, v.previewSize)
}
