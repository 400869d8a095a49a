package imageloader

import (
	"fmt"
	"image"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

func NewImageLoader(fetcher api.ImageFetcher) api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	loader := &DefaultImageLoader{
		fetcher: fetcher,
	}
	logger.Debug.Printf("Image loader initialized")
	return loader
}

type DefaultImageLoader struct {
	fetcher api.ImageFetcher

	api.ImageLoader
}

func (s *DefaultImageLoader) LoadImage(address string) (image.Image, error) {
	return s.load(address, nil)
}

func (s *DefaultImageLoader) LoadImageScaled(address string, size apitype.Size) (image.Image, error) {
	return s.load(address, &size)
}

func (s *DefaultImageLoader) load(address string, size *apitype.Size) (image.Image, error) {
	if address == "" {
		return nil, fmt.Errorf("empty image address")
	}
	data, err := s.fetcher.Fetch(address)
	if err != nil {
		return nil, err
	}

	var decoded image.Image
	if size != nil {
		decoded, err = decodeScaled(data, *size)
	} else {
		decoded, err = decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %w", address, err)
	}

	exifData, err := apitype.LoadExifData(data)
	if err != nil && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': No usable EXIF orientation: %s", address, err)
	}
	return ConvertToRgba(apitype.ExifRotateImage(decoded, exifData)), nil
}
