package internal

import (
	"fmt"
	"github.com/AllenDang/giu"
	"image"
	"runtime"
	"sync"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
	"vincit.fi/photo-gallery/ui/giu/internal/guiapi"
)

const debounceTime = time.Millisecond * 150

// TextureManager turns images of the image store into textures. Thumbnails
// are kept for the whole session; only one full size texture, the one in
// the lightbox, exists at a time.
type TextureManager struct {
	imageCache           api.ImageStore
	thumbnailCache       map[apitype.ImageId]guiapi.TexturedImage
	thumbnailMutex       sync.Mutex
	currentDebounceEntry *debounceEntry
	loadedImage          *guiapi.TexturedImage
	loadedSize           apitype.Size
	mainImageMutex       sync.Mutex
}

type debounceEntry struct {
	image     *apitype.ImageRecord
	size      apitype.Size
	timer     *time.Timer
	cancelled bool
	mux       sync.Mutex
}

func (s *debounceEntry) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = nil
}

func (s *debounceEntry) isCancelled() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.cancelled
}

func NewTextureManager(imageCache api.ImageStore) *TextureManager {
	return &TextureManager{
		imageCache:     imageCache,
		thumbnailCache: map[apitype.ImageId]guiapi.TexturedImage{},
	}
}

// GetThumbnailTexture returns the thumbnail texture if it has been loaded
// already and starts loading it otherwise.
func (s *TextureManager) GetThumbnailTexture(record *apitype.ImageRecord) guiapi.TexturedImage {
	s.thumbnailMutex.Lock()
	defer s.thumbnailMutex.Unlock()

	if texture, ok := s.thumbnailCache[record.Id()]; ok {
		return texture
	}
	newEntry := *guiapi.NewEmptyTexturedImage(record)
	s.thumbnailCache[record.Id()] = newEntry
	go s.loadThumbnail(record)
	return newEntry
}

func (s *TextureManager) loadThumbnail(record *apitype.ImageRecord) {
	thumbnail, err := s.imageCache.GetThumbnail(record)
	rgba, ok := thumbnail.(*image.RGBA)
	if err == nil && !ok {
		err = fmt.Errorf("unexpected image type %T", thumbnail)
	}
	if err != nil {
		logger.Warn.Printf("Thumbnail of %s not available: %s", record, err)
		s.setThumbnail(record, guiapi.NewFailedTexturedImage(record))
		return
	}

	giu.NewTextureFromRgba(rgba, func(texture *giu.Texture) {
		bounds := rgba.Bounds()
		s.setThumbnail(record, guiapi.NewTexturedImage(record, texture, bounds.Dx(), bounds.Dy()))
	})
}

func (s *TextureManager) setThumbnail(record *apitype.ImageRecord, texture *guiapi.TexturedImage) {
	s.thumbnailMutex.Lock()
	s.thumbnailCache[record.Id()] = *texture
	s.thumbnailMutex.Unlock()
	giu.Update()
}

// GetFullTexture returns the lightbox texture of record scaled to size. A
// new size or image is loaded after a short debounce so that resizing the
// window does not scale the image on every frame. Until then the previous
// texture of the same image or the thumbnail is returned.
func (s *TextureManager) GetFullTexture(record *apitype.ImageRecord, size apitype.Size) guiapi.TexturedImage {
	s.mainImageMutex.Lock()
	loaded := s.loadedImage
	loadedSize := s.loadedSize
	pending := s.currentDebounceEntry
	s.mainImageMutex.Unlock()

	sameImage := loaded != nil && loaded.Image.Id() == record.Id()
	if sameImage && loadedSize == size {
		return *loaded
	}

	if pending == nil || pending.image.Id() != record.Id() || pending.size != size {
		s.requestFullTexture(record, size)
	}

	if sameImage && loaded.IsReady() {
		return *loaded
	}
	thumbnail := s.GetThumbnailTexture(record)
	if thumbnail.Failed {
		return thumbnail
	}
	thumbnail.IsLoading = true
	return thumbnail
}

func (s *TextureManager) requestFullTexture(record *apitype.ImageRecord, size apitype.Size) {
	newEntry := &debounceEntry{
		image: record,
		size:  size,
	}

	s.mainImageMutex.Lock()
	if s.currentDebounceEntry != nil {
		s.currentDebounceEntry.Cancel()
	}
	s.currentDebounceEntry = newEntry
	newEntry.timer = s.createDelayedLoadFunc(newEntry, debounceTime)
	s.mainImageMutex.Unlock()
}

func (s *TextureManager) createDelayedLoadFunc(entry *debounceEntry, duration time.Duration) *time.Timer {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Creating new debounce entry for %s", entry.image)
	}
	return time.AfterFunc(duration, func() {
		if entry.isCancelled() {
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Skip loading cancelled %s", entry.image)
			}
			return
		}

		img, err := s.imageCache.GetScaled(entry.image, entry.size)
		rgba, ok := img.(*image.RGBA)
		if err == nil && !ok {
			err = fmt.Errorf("unexpected image type %T", img)
		}
		if err != nil {
			logger.Warn.Printf("Could not load %s: %s", entry.image, err)
			s.setLoaded(entry, guiapi.NewFailedTexturedImage(entry.image))
			return
		}

		giu.NewTextureFromRgba(rgba, func(texture *giu.Texture) {
			bounds := rgba.Bounds()
			s.setLoaded(entry, guiapi.NewTexturedImage(entry.image, texture, bounds.Dx(), bounds.Dy()))
			logger.Trace.Printf("Loading %s completed", entry.image)
			runtime.GC()
		})
	})
}

func (s *TextureManager) setLoaded(entry *debounceEntry, texture *guiapi.TexturedImage) {
	if entry.isCancelled() {
		return
	}
	s.mainImageMutex.Lock()
	s.loadedImage = texture
	s.loadedSize = entry.size
	if s.currentDebounceEntry == entry {
		s.currentDebounceEntry = nil
	}
	s.mainImageMutex.Unlock()
	giu.Update()
}

// ReleaseFullTexture forgets the lightbox texture. Used when the lightbox
// closes and the scaled images are purged.
func (s *TextureManager) ReleaseFullTexture() {
	s.mainImageMutex.Lock()
	defer s.mainImageMutex.Unlock()
	if s.currentDebounceEntry != nil {
		s.currentDebounceEntry.Cancel()
		s.currentDebounceEntry = nil
	}
	s.loadedImage = nil
	s.loadedSize = apitype.Size{}
}
