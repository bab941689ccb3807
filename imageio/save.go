package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encode writes img to w in format f. A non-nil warning is returned for
// lossy formats even though the image was written.
func Encode(w io.Writer, img image.Image, f Format) (*LossyFormatWarning, error) {
	var err error
	switch f {
	case PNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case GIF:
		err = gif.Encode(w, img, nil)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidImageFormat, f)
	}
	if err != nil {
		return nil, &ImageError{Op: "encode " + f.String(), Err: err}
	}

	return lossyWarning(f), nil
}

// Save writes img to path in format f. The image is written to a temporary
// file in the same folder which is renamed over path once complete.
func Save(path string, img image.Image, f Format) (warn *LossyFormatWarning, err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	slog.Debug("saving", "file", path, "format", f)
	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return nil, &ImageError{Op: "create temporary", Path: path, Err: err}
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = &ImageError{Op: "flush", Path: outFile.Name(), Err: defErr}
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = &ImageError{Op: "close", Path: outFile.Name(), Err: defErr}
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = &ImageError{Op: "rename", Path: path, Err: defErr}
			}
		}
		if err != nil {
			warn = nil
			if rmErr := os.Remove(outFile.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	if warn, err = Encode(outFile, img, f); err != nil {
		return nil, err
	}

	canRename = true
	return warn, nil
}

// CheckDestination fails if path exists and overwrite is not allowed, or if
// it exists and is not a regular file.
func CheckDestination(path string, overwrite bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", path, err)
		}
		return nil
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot overwrite non-regular file %q: %s", path, info.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", path)
	}
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
