package preloader

import (
	"sync"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

// Preloader warms the image store with every catalog image before the
// gallery is shown.
type Preloader struct {
	store api.ImageStore
}

func NewPreloader(store api.ImageStore) *Preloader {
	return &Preloader{
		store: store,
	}
}

// Preload starts one load per record and returns a channel that is closed
// once every load has either succeeded or failed. Failures are only logged;
// a broken image is shown as a placeholder later.
func (s *Preloader) Preload(records []*apitype.ImageRecord) <-chan struct{} {
	ready := make(chan struct{})
	startTime := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(len(records))
	for _, record := range records {
		go func(record *apitype.ImageRecord) {
			defer wg.Done()
			if _, err := s.store.GetFull(record); err != nil {
				logger.Warn.Printf("Preloading %s failed: %s", record, err)
			} else {
				logger.Trace.Printf("Preloaded %s", record)
			}
		}(record)
	}

	go func() {
		wg.Wait()
		logger.Debug.Printf("Preloaded %d images in %s", len(records), time.Since(startTime))
		close(ready)
	}()
	return ready
}

// HideWhenReady calls hide once ready is closed and delay has passed after
// that. The delay only keeps the loading screen from flickering.
func HideWhenReady(ready <-chan struct{}, delay time.Duration, hide func()) {
	go func() {
		<-ready
		if delay > 0 {
			time.Sleep(delay)
		}
		hide()
	}()
}
