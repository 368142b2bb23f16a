package ui

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Index returns the position of the current focus in Order, or -1.
func (f *FocusManager) Index() int {
	return f.indexOf(f.Current)
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

// Next advances focus to the next panel in order, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move((f.Index() + 1) % len(f.Order))
}

// Prev moves focus to the previous panel in order, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.Index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.move(idx)
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	f.move(idx)
	return true
}

func (f *FocusManager) move(idx int) string {
	from := f.Current
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}
