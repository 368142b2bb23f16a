package qr

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Preview scales img into a size×size square, preserving aspect ratio and
// centering it on bg. Nearest-neighbour sampling keeps module edges hard.
func Preview(img image.Image, size int, bg color.Color) *image.Gray {
	size = max(size, 0)
	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	src := img.Bounds()
	if size <= 0 || src.Empty() {
		return dst
	}
	w, h := size, size
	if src.Dx() > src.Dy() {
		h = src.Dy() * size / src.Dx()
	} else if src.Dy() > src.Dx() {
		w = src.Dx() * size / src.Dy()
	}
	x0 := (size - w) / 2
	y0 := (size - h) / 2
	draw.NearestNeighbor.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), img, src, draw.Src, nil)
	return dst
}
