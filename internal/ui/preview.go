package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qrpanels/internal/qr"
)

const emptyPreviewText = "No QR code yet"

// previewRows is the terminal height of a size-pixel preview: each row
// holds two pixel rows.
func previewRows(size int) int {
	return (size + 1) / 2
}

// renderPreview scales code into a size×size area and draws it with half
// blocks. Light pixels are drawn, so the frame reads black-on-white.
func renderPreview(code *qr.Code, size int) string {
	img := qr.Preview(code.Image(), size, color.White)
	return Styles.Preview.Render(halfBlocks(img))
}

// renderEmptyPreview draws the placeholder frame shown before the first generate.
func renderEmptyPreview(size int) string {
	body := lipgloss.Place(size, previewRows(size), lipgloss.Center, lipgloss.Center,
		Styles.Empty.Render(emptyPreviewText))
	return Styles.Preview.Render(body)
}

func halfBlocks(img *image.Gray) string {
	b := img.Bounds()
	light := func(x, y int) bool {
		return y < b.Max.Y && img.GrayAt(x, y).Y >= 0x80
	}

	lines := make([]string, 0, previewRows(b.Dy()))
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			top, bottom := light(x, y), light(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		lines = append(lines, Styles.PreviewPixels.Render(sb.String()))
	}
	return strings.Join(lines, "\n")
}
