package lsb

import (
	"image"

	"golang.org/x/image/draw"
)

// Clone copies img into a new NRGBA grid whose bounds start at (0, 0).
// NRGBA keeps straight (non-premultiplied) 8-bit channels, so every low bit
// written here is the one lossless encoders persist.
func Clone(img image.Image) *image.NRGBA {
	sr := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < sr.Dy(); y++ {
			i := src.PixOffset(sr.Min.X, sr.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[i:i+sr.Dx()*4])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, sr.Min, draw.Src)
	return dst
}

// view returns img as an NRGBA grid, converting only when needed. The
// result must not be written to.
func view(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return Clone(img)
}
