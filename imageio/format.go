// Package imageio loads and saves the images the lsb codec works on.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrInvalidImageFormat = errors.New("invalid image format")

// Format is an output image format.
type Format int

const (
	PNG Format = iota + 1
	BMP
	TIFF
	JPEG
	GIF
)

type formatInfo struct {
	name  string
	lossy bool
}

var formatTable = map[Format]formatInfo{
	PNG:  {name: "png"},
	BMP:  {name: "bmp"},
	TIFF: {name: "tiff"},
	JPEG: {name: "jpeg", lossy: true},
	GIF:  {name: "gif", lossy: true},
}

var formatNames = map[string]Format{
	"png":  PNG,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
}

// FormatNames lists the accepted format identifiers, for CLI enums and help.
const FormatNames = "png,bmp,tif,tiff,jpg,jpeg,gif"

// ParseFormat resolves a format identifier or file extension such as "PNG",
// ".jpg" or "tif".
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	if f, ok := formatNames[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidImageFormat, s)
}

func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrInvalidImageFormat, filepath.Base(path))
	}
	return ParseFormat(ext)
}

func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the usual file extension, with the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Lossy reports whether saving in f may alter low bits of the pixels.
func (f Format) Lossy() bool {
	return formatTable[f].lossy
}
