package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_Rotation(t *testing.T) {
	var changes [][2]string
	f := &FocusManager{
		Current: "a",
		Order:   []string{"a", "b", "c"},
		OnChange: func(from, to string) {
			changes = append(changes, [2]string{from, to})
		},
	}

	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next(), "Next wraps")
	assert.Equal(t, "c", f.Prev(), "Prev wraps")
	assert.Equal(t, 2, f.Index())
	assert.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "c"}}, changes)
}

func TestFocusManager_SetFocus(t *testing.T) {
	calls := 0
	f := &FocusManager{Order: []string{"a", "b"}, OnChange: func(string, string) { calls++ }}

	assert.Equal(t, -1, f.Index())
	assert.True(t, f.SetFocus("b"))
	assert.Equal(t, "b", f.Current)
	assert.True(t, f.SetFocus("b"))
	assert.Equal(t, 1, calls, "refocusing the same panel is not a change")
	assert.False(t, f.SetFocus("zzz"))
	assert.Equal(t, "b", f.Current)
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())
}
