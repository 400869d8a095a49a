//go:build !linux

package imageloader

import (
	"image"
	"vincit.fi/photo-gallery/api/apitype"
)

func decode(data []byte) (image.Image, error) {
	return decodeGeneric(data)
}

func decodeScaled(data []byte, size apitype.Size) (image.Image, error) {
	return decodeAndFit(data, size)
}
