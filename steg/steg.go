// Package steg hides text in image files and byte slices, joining the
// imageio loaders and savers with the lsb codec.
package steg

import (
	"bytes"
	"fmt"
	"log/slog"

	"imgstegano/imageio"
	"imgstegano/lsb"
)

// EncodeFile hides message in the image at src and saves the result to dst
// in format f. The returned warning is non-nil when f is lossy.
func EncodeFile(src, dst string, f imageio.Format, message string) (*imageio.LossyFormatWarning, error) {
	img, srcFormat, err := imageio.Load(src)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded cover", "file", src, "format", srcFormat, "capacity", lsb.ImageCapacity(img))

	encoded, err := lsb.Encode(img, []byte(message))
	if err != nil {
		return nil, err
	}

	return imageio.Save(dst, encoded, f)
}

// DecodeFile returns the message hidden in the image at path, failing with
// lsb.ErrInvalidUTF8 when it is not valid text.
func DecodeFile(path string) (string, error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return "", err
	}
	return lsb.Decode(img)
}

// DecodeFileLossy is like DecodeFile but substitutes invalid UTF-8.
func DecodeFileLossy(path string) (string, error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return "", err
	}
	return lsb.DecodeLossy(img), nil
}

// EncodeBytes hides message in an encoded image of any supported format and
// returns it re-encoded in format, an identifier such as "png" or "jpg".
func EncodeBytes(input []byte, format string, message string) ([]byte, *imageio.LossyFormatWarning, error) {
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return nil, nil, err
	}

	img, _, err := imageio.LoadBytes(input)
	if err != nil {
		return nil, nil, err
	}

	encoded, err := lsb.Encode(img, []byte(message))
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	warn, err := imageio.Encode(&buf, encoded, f)
	if err != nil {
		return nil, nil, fmt.Errorf("could not encode result: %w", err)
	}
	return buf.Bytes(), warn, nil
}

func DecodeBytes(input []byte) (string, error) {
	img, _, err := imageio.LoadBytes(input)
	if err != nil {
		return "", err
	}
	return lsb.Decode(img)
}

// CapacityFile returns the capacity of the image at path, reading only its
// header.
func CapacityFile(path string) (int, error) {
	conf, _, err := imageio.DecodeConfig(path)
	if err != nil {
		return 0, err
	}
	return lsb.Capacity(conf.Width, conf.Height), nil
}

func CapacityBytes(input []byte) (int, error) {
	conf, _, err := imageio.DecodeConfigBytes(input)
	if err != nil {
		return 0, err
	}
	return lsb.Capacity(conf.Width, conf.Height), nil
}
