package api

import (
	"image"
	"vincit.fi/photo-gallery/api/apitype"
)

type ImageStore interface {
	Initialize([]*apitype.ImageRecord)
	GetFull(*apitype.ImageRecord) (image.Image, error)
	GetScaled(*apitype.ImageRecord, apitype.Size) (image.Image, error)
	GetThumbnail(*apitype.ImageRecord) (image.Image, error)
	GetByteSize() uint64
	GetSizeInMB() float64
	Purge()
}
