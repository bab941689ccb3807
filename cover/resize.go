package cover

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// resize scales img to width x height. When crop is set the source is
// trimmed to the target aspect ratio first; otherwise the whole source is
// fitted and the bars are filled with the mean colour of the source.
func resize(logger *slog.Logger, img image.Image, width, height int, crop bool) *image.NRGBA {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}
	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	destSize := image.Rect(0, 0, int(destWidth), int(destHeight))
	destBounds := destSize

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	if crop {
		if srcAR < destAR {
			dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
			srcBounds.Min.Y += dh
			srcBounds.Max.Y -= dh
		} else if srcAR > destAR {
			dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
			srcBounds.Min.X += dw
			srcBounds.Max.X -= dw
		}
	} else {
		if srcAR < destAR {
			idw := int(math.Round((destWidth - destHeight*srcAR) / 2))
			destBounds.Min.X += idw
			destBounds.Max.X -= idw
		} else if srcAR > destAR {
			idh := int(math.Round((destHeight - destWidth/srcAR) / 2))
			destBounds.Min.Y += idh
			destBounds.Max.Y -= idh
		}
	}

	logger.Info("resizing", "width", destSize.Dx(), "height", destSize.Dy(), "crop", crop)
	dest := newSolidImage(destSize.Dx(), destSize.Dy(), meanColor(img))
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)

	return dest
}
