// Package cover generates cover images to hide messages in.
package cover

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand/v2"
)

// Config describes a cover image.
type Config struct {
	Width  int           // Pixel width; 0 keeps the source width
	Height int           // Pixel height; 0 keeps the source height
	Color  string        // "#rrggbb", "#rgb" or "random"; ignored with Source
	Source image.Image   // Optional photo to resize instead of a solid colour
	Crop   bool          // Crop Source to the target aspect ratio instead of fitting it
	Noise  int           // Max per channel deviation added to every pixel, 0-127
	Pal    color.Palette // Optional palette to reduce the image to
	Dither bool          // Dither when reducing to Pal
}

// Generate builds the cover described by cfg.
func Generate(logger *slog.Logger, cfg Config) (*image.NRGBA, error) {
	if cfg.Noise < 0 || cfg.Noise > 127 {
		return nil, fmt.Errorf("invalid noise amplitude: %d", cfg.Noise)
	}

	var img *image.NRGBA
	if cfg.Source != nil {
		if cfg.Width < 0 || cfg.Height < 0 {
			return nil, fmt.Errorf("invalid cover size: %dx%d", cfg.Width, cfg.Height)
		}
		if cfg.Source.Bounds().Empty() {
			return nil, fmt.Errorf("empty source image")
		}
		img = resize(logger, cfg.Source, cfg.Width, cfg.Height, cfg.Crop)
	} else {
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return nil, fmt.Errorf("invalid cover size: %dx%d", cfg.Width, cfg.Height)
		}
		c, err := ParseColor(cfg.Color)
		if err != nil {
			return nil, err
		}
		logger.Info("filling", "color", fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
		img = newSolidImage(cfg.Width, cfg.Height, c)
	}

	if cfg.Noise > 0 {
		addNoise(img, cfg.Noise)
	}

	if len(cfg.Pal) > 0 {
		img = repalette(logger, img, cfg.Pal, cfg.Dither)
	}

	return img, nil
}

// addNoise shifts every colour channel by a random amount in
// [-amplitude, amplitude], clamped to the channel range.
func addNoise(img *image.NRGBA, amplitude int) {
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			for c := range 3 {
				v := int(row[i+c]) + rand.IntN(2*amplitude+1) - amplitude
				row[i+c] = uint8(min(max(v, 0), 0xFF))
			}
		}
	}
}
