// Package lsb hides a byte message in the least significant bits of the
// R, G and B channels of an image and recovers it again.
//
// Wire format: pixels are visited row by row, left to right, and within a
// pixel the channels are visited in R, G, B order. Every channel carries one
// bit. The message bytes are written most significant bit first and are
// followed by a single zero byte which marks the end of the message. Alpha
// is never touched.
package lsb

import "image"

const (
	// ChannelsPerPixel is the number of channels carrying data: R, G and B.
	ChannelsPerPixel = 3
	// BitsPerChannel is the number of low bits replaced in every channel.
	BitsPerChannel = 1
)

// Capacity returns how many message bytes fit in a width x height image,
// one byte being reserved for the terminator.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return max(width*height*ChannelsPerPixel*BitsPerChannel/8-1, 0)
}

func ImageCapacity(img image.Image) int {
	b := img.Bounds()
	return Capacity(b.Dx(), b.Dy())
}
