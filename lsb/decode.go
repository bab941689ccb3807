package lsb

import (
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Extract reads the hidden payload of img. Reading stops at the first zero
// byte, which is not part of the payload. If the image runs out before a
// zero byte is found, the bytes read so far are returned with terminated set
// to false and any trailing partial byte is dropped.
func Extract(img image.Image) (payload []byte, terminated bool) {
	grid := view(img)
	width, height := grid.Rect.Dx(), grid.Rect.Dy()

	var acc bitAccumulator
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := grid.PixOffset(x, y)
			for c := range ChannelsPerPixel {
				b, ready := acc.push(grid.Pix[off+c] & 1)
				if !ready {
					continue
				}
				if b == terminator {
					return payload, true
				}
				payload = append(payload, b)
			}
		}
	}

	return payload, false
}

// Decode returns the message hidden in img. It fails with ErrInvalidUTF8
// rather than altering bytes that are not valid text.
func Decode(img image.Image) (string, error) {
	payload, _ := Extract(img)
	return Text(payload)
}

// DecodeLossy is like Decode but replaces invalid UTF-8 with U+FFFD.
func DecodeLossy(img image.Image) string {
	payload, _ := Extract(img)
	return LossyText(payload)
}

// Text converts an extracted payload to a string, strictly.
func Text(payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", ErrInvalidUTF8
	}
	return string(payload), nil
}

func LossyText(payload []byte) string {
	text, err := unicode.UTF8.NewDecoder().Bytes(payload)
	if err != nil {
		return strings.ToValidUTF8(string(payload), "\uFFFD")
	}
	return string(text)
}
