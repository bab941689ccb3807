package lsb

import "image"

// Encode returns a copy of img with message hidden in it. img itself is left
// untouched, so the same cover may be encoded any number of times.
//
// The message is checked against the capacity before anything is copied:
// an empty message fails with ErrEmptyMessage and an oversized one with a
// *MessageTooLargeError. Pixels past the last written bit are identical to
// the source.
func Encode(img image.Image, message []byte) (*image.NRGBA, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}

	available := ImageCapacity(img)
	if len(message) > available {
		return nil, &MessageTooLargeError{
			Required:  len(message),
			Available: available,
		}
	}

	out := Clone(img)
	bits := newBitStream(message)
	width, height := out.Rect.Dx(), out.Rect.Dy()

outer:
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := out.PixOffset(x, y)
			for c := range ChannelsPerPixel {
				bit, ok := bits.next()
				if !ok {
					break outer
				}
				out.Pix[off+c] = out.Pix[off+c]&0xFE | bit
			}
		}
	}

	return out, nil
}
