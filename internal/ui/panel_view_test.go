package ui

import (
	"context"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrpanels/internal/panel"
	"qrpanels/internal/qr"
)

func newTestPanelView(t *testing.T, size int) *PanelView {
	t.Helper()
	p := panel.New("panel-1", "QR code 1", qr.NewEncoder(qr.DefaultOptions()))
	return NewPanelView(p, size)
}

func TestPanelView_PlaceholderBeforeGenerate(t *testing.T) {
	for _, size := range []int{8, 20, 40} {
		v := newTestPanelView(t, size)
		out := v.View()
		assert.Contains(t, out, "QR code 1")
		assert.Contains(t, out, inputPlaceholder, "preview size %d", size)
		assert.Contains(t, out, "Generate")
		assert.Contains(t, out, "Save")
		assert.NotContains(t, out, "█")
	}
}

func TestPanelView_InputWidth(t *testing.T) {
	small := newTestPanelView(t, 8)
	assert.Equal(t, minInputWidth, small.InputWidth())

	small.SetWidth(80)
	assert.Equal(t, 80-panelChromeWidth-len(inputPrompt), small.InputWidth())

	small.SetWidth(10)
	assert.Equal(t, minInputWidth, small.InputWidth(), "never narrower than the placeholder")

	large := newTestPanelView(t, 40)
	large.SetWidth(30)
	assert.Equal(t, 40, large.InputWidth(), "never narrower than the preview")
}

func TestPanelView_PreviewAfterGenerate(t *testing.T) {
	v := newTestPanelView(t, 20)
	v.SetValue("https://example.com")
	v.SyncInput()
	require.NoError(t, v.Panel.Generate(context.Background()))

	out := v.View()
	assert.NotContains(t, out, emptyPreviewText)
	assert.Contains(t, out, "█")
	assert.Same(t, v.Panel.Code(), v.previewCode)

	// Preview is a fixed 20 columns wide, 10 rows tall, inside its frame.
	lines := strings.Split(v.preview, "\n")
	assert.Len(t, lines, previewRows(20)+2)
}

func TestPanelView_FocusRoutesKeys(t *testing.T) {
	v := newTestPanelView(t, 20)
	v.Update(keyMsg("abc"))
	assert.Empty(t, v.Value(), "unfocused field ignores keys")

	v.Focus()
	assert.True(t, v.Focused())
	v.Update(keyMsg("abc"))
	assert.Equal(t, "abc", v.Value())

	v.Blur()
	assert.False(t, v.Focused())
}

func TestHalfBlocks(t *testing.T) {
	// Column 0: light/light, 1: light/dark, 2: dark/light, 3: dark/dark.
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	set := func(x, y int, light bool) {
		if light {
			img.Pix[img.PixOffset(x, y)] = 0xff
		}
	}
	set(0, 0, true)
	set(0, 1, true)
	set(1, 0, true)
	set(2, 1, true)

	assert.Contains(t, halfBlocks(img), "█▀▄ ")
}

func TestHalfBlocks_OddHeight(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 3))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	out := halfBlocks(img)
	assert.Len(t, strings.Split(out, "\n"), 2)
	assert.Contains(t, out, "▀", "last row has no lower pixel")
}
