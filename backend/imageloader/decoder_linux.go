//go:build linux

package imageloader

import (
	"bytes"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"vincit.fi/photo-gallery/api/apitype"
)

var options = &jpeg.DecoderOptions{}

func decode(data []byte) (image.Image, error) {
	if isJpeg(data) {
		return jpeg.Decode(bytes.NewReader(data), options)
	}
	return decodeGeneric(data)
}

// decodeScaled lets libjpeg scale while decoding. The result is the
// smallest DCT scale that still covers the requested size.
func decodeScaled(data []byte, size apitype.Size) (image.Image, error) {
	if isJpeg(data) {
		return jpeg.Decode(bytes.NewReader(data), &jpeg.DecoderOptions{
			ScaleTarget: image.Rect(0, 0, size.Width(), size.Height()),
		})
	}
	return decodeAndFit(data, size)
}
