package imageloader

import (
	"errors"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"sync"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

const (
	thumbnailWidth  = 400
	thumbnailHeight = thumbnailWidth
)

var (
	emptyInstance = Instance{}
	thumbnailSize = apitype.SizeOf(thumbnailWidth, thumbnailHeight)

	errInvalidRecord = errors.New("invalid image record")
	errNoLoader      = errors.New("no valid loader")
)

// Instance holds the decoded variants of one image. A failed load is
// remembered and returned again; nothing is retried.
type Instance struct {
	record       *apitype.ImageRecord
	full         image.Image
	fullErr      error
	thumbnail    image.Image
	thumbnailErr error
	scaled       image.Image
	imageLoader  api.ImageLoader
	fullMux      sync.Mutex
	thumbnailMux sync.Mutex
	scaledMux    sync.Mutex
}

func NewInstance(record *apitype.ImageRecord, imageLoader api.ImageLoader) *Instance {
	return &Instance{
		record:      record,
		imageLoader: imageLoader,
	}
}

func (s *Instance) IsValid() bool {
	return s.record.IsValid()
}

func (s *Instance) GetFull() (image.Image, error) {
	if !s.IsValid() {
		return nil, errInvalidRecord
	}
	s.fullMux.Lock()
	defer s.fullMux.Unlock()

	if s.full != nil {
		logger.Trace.Print("Use cached full image")
		return s.full, nil
	}
	if s.fullErr != nil {
		return nil, s.fullErr
	}

	startTime := time.Now()
	full, err := s.load(s.record.Url(), nil)
	if err != nil {
		logger.Warn.Printf("Could not load full image '%s': %s", s.record.Url(), err)
		s.fullErr = err
		return nil, err
	}
	s.full = full
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Full loaded in %s", s.record.Url(), time.Since(startTime))
	}
	return s.full, nil
}

func (s *Instance) GetScaled(size apitype.Size) (image.Image, error) {
	if !s.IsValid() {
		return nil, errInvalidRecord
	}
	full, err := s.GetFull()
	if err != nil {
		return nil, err
	}

	s.scaledMux.Lock()
	defer s.scaledMux.Unlock()

	newSize := apitype.RectangleOfScaledToFit(full.Bounds(), size)
	if s.scaled != nil {
		bounds := s.scaled.Bounds()
		if newSize.Width() == bounds.Dx() && newSize.Height() == bounds.Dy() {
			logger.Trace.Print("Use cached scaled image")
			return s.scaled, nil
		}
	}

	startTime := time.Now()
	s.scaled = ConvertToRgba(imaging.Resize(full, newSize.Width(), newSize.Height(), imaging.Linear))
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Scaled to %dx%d in %s", s.record.Url(), newSize.Width(), newSize.Height(), time.Since(startTime))
	}
	return s.scaled, nil
}

// GetThumbnail shares the full image when the record has no separate
// thumbnail address.
func (s *Instance) GetThumbnail() (image.Image, error) {
	if !s.IsValid() {
		return nil, errInvalidRecord
	}
	s.thumbnailMux.Lock()
	defer s.thumbnailMux.Unlock()

	if s.thumbnail != nil {
		logger.Trace.Print("Use cached thumbnail")
		return s.thumbnail, nil
	}
	if s.thumbnailErr != nil {
		return nil, s.thumbnailErr
	}

	startTime := time.Now()
	var source image.Image
	var err error
	if s.record.Thumbnail() == s.record.Url() {
		source, err = s.GetFull()
	} else {
		source, err = s.load(s.record.Thumbnail(), &thumbnailSize)
	}
	if err != nil {
		logger.Warn.Printf("Could not load thumbnail '%s': %s", s.record.Thumbnail(), err)
		s.thumbnailErr = err
		return nil, err
	}

	s.thumbnail = ConvertToRgba(resize.Thumbnail(thumbnailWidth, thumbnailHeight, source, resize.Bilinear))
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Thumbnail loaded in %s", s.record.Thumbnail(), time.Since(startTime))
	}
	return s.thumbnail, nil
}

// Purge drops the scaled variant. Full and thumbnail images stay so that
// preloaded images are not fetched again.
func (s *Instance) Purge() {
	s.scaledMux.Lock()
	defer s.scaledMux.Unlock()
	s.scaled = nil
}

func (s *Instance) GetByteLength() int {
	var byteLength = 0
	s.fullMux.Lock()
	byteLength += GetByteLength(s.full)
	s.fullMux.Unlock()
	s.scaledMux.Lock()
	byteLength += GetByteLength(s.scaled)
	s.scaledMux.Unlock()
	s.thumbnailMux.Lock()
	byteLength += GetByteLength(s.thumbnail)
	s.thumbnailMux.Unlock()
	return byteLength
}

func GetByteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}

func (s *Instance) load(address string, size *apitype.Size) (image.Image, error) {
	if s.imageLoader == nil {
		return nil, errNoLoader
	}
	if size != nil {
		return s.imageLoader.LoadImageScaled(address, *size)
	} else {
		return s.imageLoader.LoadImage(address)
	}
}
