package imageio

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format and returns it with the
// format name reported by the decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", &ImageError{Op: "decode", Err: err}
	}
	return img, name, nil
}

func LoadBytes(data []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(data))
}

func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &ImageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	img, name, err := image.Decode(f)
	if err != nil {
		return nil, "", &ImageError{Op: "decode", Path: path, Err: err}
	}
	return img, name, nil
}

// DecodeConfig reads only the header of the image at path.
func DecodeConfig(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", &ImageError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	conf, name, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", &ImageError{Op: "decode config", Path: path, Err: err}
	}
	return conf, name, nil
}

func DecodeConfigBytes(data []byte) (image.Config, string, error) {
	conf, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", &ImageError{Op: "decode config", Err: err}
	}
	return conf, name, nil
}
