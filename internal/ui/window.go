package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qrpanels/internal/config"
	"qrpanels/internal/panel"
	"qrpanels/internal/qr"
	"qrpanels/internal/ui/textutil"
)

// WindowTitle is shown above the panel list.
const WindowTitle = "QR code generator (multi)"

// WindowModel is the root model: a fixed set of independent panels stacked
// in a scrollable viewport, with dialogs drawn from Overlays.
type WindowModel struct {
	Title         string
	Panels        []*PanelView
	Focus         *FocusManager
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	Status        string
	StatusIsError bool

	DefaultFilename string

	viewport viewport.Model
	width    int
	height   int
	ctx      context.Context
	log      *slog.Logger
}

// WindowOption configures a WindowModel.
type WindowOption func(*windowOptions)

type windowOptions struct {
	log       *slog.Logger
	panelOpts []panel.Option
	ctx       context.Context
}

// WithWindowLogger sets the logger shared by the window and its panels.
func WithWindowLogger(l *slog.Logger) WindowOption {
	return func(o *windowOptions) { o.log = l }
}

// WithPanelOptions passes extra options (tracer, logger) to every panel.
func WithPanelOptions(opts ...panel.Option) WindowOption {
	return func(o *windowOptions) { o.panelOpts = append(o.panelOpts, opts...) }
}

// WithContext sets the parent context for generate and save spans.
func WithContext(ctx context.Context) WindowOption {
	return func(o *windowOptions) { o.ctx = ctx }
}

// NewWindowModel creates cfg.Panels independent panels sharing enc.
func NewWindowModel(cfg *config.Config, enc *qr.Encoder, opts ...WindowOption) *WindowModel {
	o := windowOptions{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx: context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	w := &WindowModel{
		Title:           WindowTitle,
		DefaultFilename: cfg.DefaultFilename,
		width:           cfg.WindowWidth,
		height:          cfg.WindowHeight,
		ctx:             o.ctx,
		log:             o.log,
	}

	// The reporter is appended last so callers cannot replace it.
	panelOpts := append([]panel.Option{panel.WithLogger(o.log)}, o.panelOpts...)
	panelOpts = append(panelOpts, panel.WithReporter(dialogReporter{overlays: &w.Overlays}))

	order := make([]string, 0, cfg.Panels)
	for i := range cfg.Panels {
		id := fmt.Sprintf("panel-%d", i+1)
		p := panel.New(id, fmt.Sprintf("QR code %d", i+1), enc, panelOpts...)
		pv := NewPanelView(p, cfg.PreviewSize)
		pv.SetWidth(cfg.WindowWidth)
		w.Panels = append(w.Panels, pv)
		order = append(order, id)
	}

	w.Focus = &FocusManager{Order: order}
	w.Focus.OnChange = func(from, to string) {
		if pv := w.panel(from); pv != nil {
			pv.Blur()
		}
		if pv := w.panel(to); pv != nil {
			pv.Focus()
		}
	}
	if len(order) > 0 {
		w.Focus.SetFocus(order[0])
	}

	w.KeyHandler = NewKeyHandler(defaultKeybinds())
	w.viewport = viewport.New(w.width, w.viewportHeight())
	w.refresh()
	return w
}

func defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	generate := func() tea.Msg { return GenerateMsg{} }
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("enter", generate, "generate")
	reg.BindWithDesc("ctrl+g", generate, "generate")
	reg.BindWithDesc("ctrl+s", func() tea.Msg { return ShowSaveMsg{} }, "save")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next panel")
	reg.Bind("down", func() tea.Msg { return FocusNextMsg{} })
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "prev panel")
	reg.Bind("up", func() tea.Msg { return FocusPrevMsg{} })
	reg.BindWithDesc("pgdown", func() tea.Msg { return ScrollMsg{Pages: 1} }, "scroll")
	reg.BindWithDesc("pgup", func() tea.Msg { return ScrollMsg{Pages: -1} }, "scroll")
	return reg
}

// Ensure the adapter can be used as tea.Model.
var _ tea.Model = (*windowAdapter)(nil)

// windowAdapter wraps WindowModel to implement tea.Model.
type windowAdapter struct {
	*WindowModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (w *WindowModel) AsTeaModel() tea.Model {
	return &windowAdapter{WindowModel: w}
}

// Init implements tea.Model.
func (a *windowAdapter) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(a.Title), textinputBlink(a.focused()))
}

// Update implements tea.Model.
func (a *windowAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case GenerateMsg:
		return a.handleGenerate(msg)
	case ShowSaveMsg:
		return a.handleShowSave(msg)
	case SaveMsg:
		return a.handleSave(msg)
	case DismissModalMsg:
		return a.handleDismissModal()
	case FocusNextMsg:
		a.Focus.Next()
		a.refresh()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		a.refresh()
		return a, nil
	case ScrollMsg:
		return a.handleScroll(msg)
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				return a.handleDismissModal()
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	// Everything else (typing, cursor blinks) goes to the top dialog or the
	// focused panel.
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	pv := a.focused()
	if pv == nil {
		return a, nil
	}
	_, cmd := pv.Update(msg)
	a.refresh()
	return a, cmd
}

// View implements tea.Model.
func (a *windowAdapter) View() string {
	if a.Overlays.Len() > 0 {
		return a.Overlays.Render("", a.width, a.height)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(a.Title),
		a.viewport.View(),
		a.statusLine(),
		RenderKeybindHelp(a.KeyHandler.Registry, a.width),
	)
}

func (w *WindowModel) statusLine() string {
	if w.Status == "" {
		return ""
	}
	s := textutil.Truncate(textutil.FirstLine(w.Status), w.width)
	if w.StatusIsError {
		return Styles.StatusError.Render(s)
	}
	return Styles.Status.Render(s)
}

// chromeHeight is the number of rows used by the title, status line and help bar.
func (w *WindowModel) chromeHeight() int {
	return 2 + lipgloss.Height(RenderKeybindHelp(w.KeyHandler.Registry, w.width))
}

func (w *WindowModel) viewportHeight() int {
	if w.KeyHandler == nil {
		return max(w.height-3, 1)
	}
	return max(w.height-w.chromeHeight(), 1)
}

// panel returns the view for id; an empty id selects the focused panel.
func (w *WindowModel) panel(id string) *PanelView {
	if id == "" {
		return w.focused()
	}
	for _, pv := range w.Panels {
		if pv.Panel.ID == id {
			return pv
		}
	}
	return nil
}

func (w *WindowModel) focused() *PanelView {
	if w.Focus == nil {
		return nil
	}
	idx := w.Focus.Index()
	if idx < 0 || idx >= len(w.Panels) {
		return nil
	}
	return w.Panels[idx]
}

// refresh rebuilds the viewport content and scrolls the focused panel into view.
func (w *WindowModel) refresh() {
	views := make([]string, len(w.Panels))
	offsets := make([]int, len(w.Panels))
	line := 0
	for i, pv := range w.Panels {
		views[i] = pv.View()
		offsets[i] = line
		line += lipgloss.Height(views[i])
	}
	w.viewport.SetContent(strings.Join(views, "\n"))

	idx := w.Focus.Index()
	if idx < 0 {
		return
	}
	top := offsets[idx]
	bottom := top + lipgloss.Height(views[idx])
	switch {
	case top < w.viewport.YOffset:
		w.viewport.SetYOffset(top)
	case bottom > w.viewport.YOffset+w.viewport.Height:
		w.viewport.SetYOffset(min(top, bottom-w.viewport.Height))
	}
}

func (w *WindowModel) setStatus(s string, isErr bool) {
	w.Status = s
	w.StatusIsError = isErr
}

func textinputBlink(pv *PanelView) tea.Cmd {
	if pv == nil {
		return nil
	}
	return pv.Focus()
}
