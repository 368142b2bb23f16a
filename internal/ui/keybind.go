package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "enter", "tab", "ctrl+s".
// There is no leader key: panels own free-text input, so every binding is a
// control or navigation key that a text field does not consume.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command without a help entry.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
// Keys sharing a description are shown together ("enter/ctrl+g generate").
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	k = normalizeKey(k)
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Bindings returns help entries for every described binding, grouped by
// description in registration order.
func (r *KeybindRegistry) Bindings() []key.Binding {
	var descs []string
	keysByDesc := make(map[string][]string)
	for _, k := range r.order {
		if r.bindings[k] == nil {
			continue
		}
		d, ok := r.descriptions[k]
		if !ok {
			continue
		}
		if _, seen := keysByDesc[d]; !seen {
			descs = append(descs, d)
		}
		keysByDesc[d] = append(keysByDesc[d], k)
	}

	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := keysByDesc[d]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), d),
		))
	}
	return out
}

// normalizeKey maps the spellings Bubble Tea uses for space to one form.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" || k == "space" {
		return " "
	}
	return k
}

// KeyHandler dispatches key messages to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key was bound and should not reach the panels.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over a KeybindRegistry.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns the registry's bindings.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings()
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
