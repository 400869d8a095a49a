package api

import (
	"image"
	"vincit.fi/photo-gallery/api/apitype"
)

// ImageFetcher returns the raw bytes behind an asset address.
type ImageFetcher interface {
	Fetch(address string) ([]byte, error)
}

type ImageLoader interface {
	LoadImage(address string) (image.Image, error)
	LoadImageScaled(address string, size apitype.Size) (image.Image, error)
}
