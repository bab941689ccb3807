package cover

import (
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// ParseColor accepts "#RGB", "#RRGGBB", "random" or "". An empty string is
// treated as "random".
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}
	if s == "" || s == "random" {
		var buf [3]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return c, fmt.Errorf("random color: %w", err)
		}
		c.R, c.G, c.B = buf[0], buf[1], buf[2]
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		n, err := fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 6:
		n, err := fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return c, fmt.Errorf("invalid color %q, should be #RGB, #RRGGBB or random", s)
	}

	return c, nil
}

func newSolidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
