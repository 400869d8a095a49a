package imageloader

import (
	"image"
	"sync"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

type DefaultImageStore struct {
	imageCache  map[apitype.ImageId]*Instance
	mux         sync.Mutex
	imageLoader api.ImageLoader

	api.ImageStore
}

func NewImageCache(imageLoader api.ImageLoader) api.ImageStore {
	logger.Debug.Printf("Initialize image cache...")
	imageCache := &DefaultImageStore{
		imageCache:  map[apitype.ImageId]*Instance{},
		imageLoader: imageLoader,
	}
	logger.Debug.Printf("Image cache initialized")
	return imageCache
}

// Initialize creates empty instances for the records. Loading happens on
// first access.
func (s *DefaultImageStore) Initialize(records []*apitype.ImageRecord) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.imageCache = map[apitype.ImageId]*Instance{}
	for _, record := range records {
		if record.IsValid() {
			s.imageCache[record.Id()] = NewInstance(record, s.imageLoader)
		}
	}
	logger.Debug.Printf("Image cache initialized for %d images", len(s.imageCache))
}

func (s *DefaultImageStore) GetFull(record *apitype.ImageRecord) (image.Image, error) {
	return s.getImage(record).GetFull()
}

func (s *DefaultImageStore) GetScaled(record *apitype.ImageRecord, size apitype.Size) (image.Image, error) {
	return s.getImage(record).GetScaled(size)
}

func (s *DefaultImageStore) GetThumbnail(record *apitype.ImageRecord) (image.Image, error) {
	return s.getImage(record).GetThumbnail()
}

func (s *DefaultImageStore) getImage(record *apitype.ImageRecord) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if record.IsValid() {
		if existingInstance, ok := s.imageCache[record.Id()]; !ok {
			instance := NewInstance(record, s.imageLoader)
			s.imageCache[record.Id()] = instance
			return instance
		} else {
			return existingInstance
		}
	} else {
		return &emptyInstance
	}
}

func (s *DefaultImageStore) instances() []*Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	instances := make([]*Instance, 0, len(s.imageCache))
	for _, instance := range s.imageCache {
		instances = append(instances, instance)
	}
	return instances
}

func (s *DefaultImageStore) Purge() {
	for _, instance := range s.instances() {
		instance.Purge()
	}
}

func (s *DefaultImageStore) GetByteSize() (byteSize uint64) {
	for _, instance := range s.instances() {
		byteSize += uint64(instance.GetByteLength())
	}
	return
}

func (s *DefaultImageStore) GetSizeInMB() (mbSize float64) {
	return float64(s.GetByteSize()) / (1024 * 1024)
}
