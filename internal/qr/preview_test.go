package qr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_SquareFillsArea(t *testing.T) {
	code, err := NewEncoder(DefaultOptions()).Encode("https://example.com")
	require.NoError(t, err)

	p := Preview(code.Image(), 200, color.White)
	assert.Equal(t, image.Rect(0, 0, 200, 200), p.Bounds())
	// Scaled preview is still a readable code.
	assert.Equal(t, "https://example.com", decode(t, p))
}

func TestPreview_PreservesAspectRatio(t *testing.T) {
	wide := image.NewGray(image.Rect(0, 0, 40, 20))
	for i := range wide.Pix {
		wide.Pix[i] = 0
	}
	p := Preview(wide, 10, color.White)

	// 40x20 scales to 10x5, centered vertically with background above and below.
	assert.Equal(t, uint8(0xff), p.GrayAt(5, 0).Y)
	assert.Equal(t, uint8(0xff), p.GrayAt(5, 9).Y)
	assert.Equal(t, uint8(0), p.GrayAt(5, 3).Y)
	assert.Equal(t, uint8(0), p.GrayAt(0, 4).Y)
}

func TestPreview_EmptySource(t *testing.T) {
	p := Preview(image.NewGray(image.Rectangle{}), 8, color.White)
	assert.Equal(t, uint8(0xff), p.GrayAt(4, 4).Y)
}
