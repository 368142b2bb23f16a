package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Code is an encoded QR symbol together with the options used to raster it.
// It is immutable once returned by Encoder.Encode.
type Code struct {
	content string
	version int
	modules [][]bool // [y][x], true is a dark module, no quiet zone
	opts    Options
}

// Content returns the encoded text.
func (c *Code) Content() string { return c.content }

// Version returns the symbol version (1-40).
func (c *Code) Version() int { return c.version }

// Size returns the symbol width in modules, excluding the border.
func (c *Code) Size() int { return len(c.modules) }

// Modules returns a copy of the module matrix, indexed [y][x].
func (c *Code) Modules() [][]bool {
	out := make([][]bool, len(c.modules))
	for y, row := range c.modules {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// PixelSize returns the width (and height) of Image in pixels.
func (c *Code) PixelSize() int {
	return (c.Size() + 2*c.opts.Border) * c.opts.BoxSize
}

// Image rasters the symbol with the configured box size and border.
// Palette index 0 is the background, 1 the foreground.
func (c *Code) Image() *image.Paletted {
	px := c.PixelSize()
	img := image.NewPaletted(image.Rect(0, 0, px, px), color.Palette{c.opts.Background, c.opts.Foreground})
	box, border := c.opts.BoxSize, c.opts.Border
	for y, row := range c.modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := (x + border) * box
			y0 := (y + border) * box
			for dy := range box {
				off := img.PixOffset(x0, y0+dy)
				for dx := range box {
					img.Pix[off+dx] = 1
				}
			}
		}
	}
	return img
}

// WritePNG serializes Image as PNG. Output is deterministic for a given Code.
func (c *Code) WritePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}

// PNG returns the PNG serialization of Image.
func (c *Code) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
