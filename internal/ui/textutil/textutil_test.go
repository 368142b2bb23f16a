package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))

	// Wide runes take two columns each.
	got := Truncate("한글한글", 5)
	assert.LessOrEqual(t, VisualWidth(got), 5)
	assert.Contains(t, got, TruncateEllipsis)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one line", FirstLine("one line"))
	assert.Equal(t, "Could not save…", FirstLine("Could not save\ndetails"))
}
