package cover

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
)

// repalette maps img onto pal, optionally with Floyd-Steinberg dithering,
// and returns the result as an NRGBA grid ready for encoding.
func repalette(logger *slog.Logger, img image.Image, pal color.Palette, dither bool) *image.NRGBA {
	logger.Info("applying palette", "colors", len(pal), "dither", dither)
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	paletted := image.NewPaletted(dr, pal)

	if dither {
		draw.FloydSteinberg.Draw(paletted, dr, img, sr.Min)
	} else {
		draw.Draw(paletted, dr, img, sr.Min, draw.Src)
	}

	dest := image.NewNRGBA(dr)
	draw.Draw(dest, dr, paletted, dr.Min, draw.Src)
	return dest
}

func meanColor(img image.Image) color.NRGBA {
	b := img.Bounds()
	n := uint64(b.Dx()) * uint64(b.Dy())
	if n == 0 {
		return color.NRGBA{A: 0xFF}
	}

	var r, g, bl uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r += uint64(c.R)
			g += uint64(c.G)
			bl += uint64(c.B)
		}
	}
	return color.NRGBA{uint8(r / n), uint8(g / n), uint8(bl / n), 0xFF}
}
