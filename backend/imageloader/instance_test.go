package imageloader

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"image"
	"sync"
	"testing"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
)

var errStubLoad = errors.New("stub load failure")

type StubImageLoader struct {
	sizes       map[string]image.Point
	loadCalls   map[string]int
	scaledCalls map[string]int
	mux         sync.Mutex

	api.ImageLoader
}

func NewStubImageLoader(sizes map[string]image.Point) *StubImageLoader {
	return &StubImageLoader{
		sizes:       sizes,
		loadCalls:   map[string]int{},
		scaledCalls: map[string]int{},
	}
}

func (s *StubImageLoader) LoadImage(address string) (image.Image, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.loadCalls[address]++
	if size, ok := s.sizes[address]; ok {
		return image.NewRGBA(image.Rect(0, 0, size.X, size.Y)), nil
	}
	return nil, errStubLoad
}

func (s *StubImageLoader) LoadImageScaled(address string, size apitype.Size) (image.Image, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.scaledCalls[address]++
	if _, ok := s.sizes[address]; ok {
		return image.NewRGBA(image.Rect(0, 0, size.Width(), size.Height())), nil
	}
	return nil, errStubLoad
}

func (s *StubImageLoader) LoadCalls(address string) int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loadCalls[address]
}

func (s *StubImageLoader) ScaledCalls(address string) int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.scaledCalls[address]
}

func TestInstance_GetFull(t *testing.T) {
	a := assert.New(t)

	loader := NewStubImageLoader(map[string]image.Point{
		"horizontal.jpg": {X: 800, Y: 600},
	})

	t.Run("Loaded", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(1, "horizontal.jpg", "", "H", "A", ""), loader)

		full, err := instance.GetFull()

		a.Nil(err)
		a.Equal(800, full.Bounds().Dx())
		a.Equal(600, full.Bounds().Dy())
		a.Equal(800*600*4, instance.GetByteLength())
	})
	t.Run("Cached", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(2, "horizontal.jpg", "", "H", "A", ""), loader)
		before := loader.LoadCalls("horizontal.jpg")

		_, _ = instance.GetFull()
		_, _ = instance.GetFull()
		full, err := instance.GetFull()

		a.Nil(err)
		a.NotNil(full)
		a.Equal(before+1, loader.LoadCalls("horizontal.jpg"))
	})
	t.Run("Failure is not retried", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(3, "missing.jpg", "", "M", "A", ""), loader)

		_, err1 := instance.GetFull()
		full, err2 := instance.GetFull()

		a.ErrorIs(err1, errStubLoad)
		a.ErrorIs(err2, errStubLoad)
		a.Nil(full)
		a.Equal(1, loader.LoadCalls("missing.jpg"))
	})
	t.Run("Invalid record", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(apitype.NoImage, "", "", "", "", ""), loader)

		full, err := instance.GetFull()
		a.ErrorIs(err, errInvalidRecord)
		a.Nil(full)
	})
	t.Run("Nil record", func(t *testing.T) {
		instance := NewInstance(nil, loader)

		full, err := instance.GetFull()
		a.NotNil(err)
		a.Nil(full)
	})
	t.Run("No loader", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(4, "horizontal.jpg", "", "H", "A", ""), nil)

		_, err := instance.GetFull()
		a.ErrorIs(err, errNoLoader)
	})
}

func TestInstance_GetScaled(t *testing.T) {
	a := assert.New(t)

	loader := NewStubImageLoader(map[string]image.Point{
		"horizontal.jpg": {X: 800, Y: 600},
	})
	instance := NewInstance(apitype.NewImageRecord(1, "horizontal.jpg", "", "H", "A", ""), loader)

	scaled, err := instance.GetScaled(apitype.SizeOf(100, 100))
	a.Nil(err)
	a.Equal(100, scaled.Bounds().Dx())
	a.Equal(75, scaled.Bounds().Dy())

	again, _ := instance.GetScaled(apitype.SizeOf(100, 100))
	a.Same(scaled, again)

	other, _ := instance.GetScaled(apitype.SizeOf(400, 400))
	a.Equal(400, other.Bounds().Dx())
	a.Equal(300, other.Bounds().Dy())

	instance.Purge()
	a.Equal(800*600*4, instance.GetByteLength())
}

func TestInstance_GetThumbnail(t *testing.T) {
	a := assert.New(t)

	loader := NewStubImageLoader(map[string]image.Point{
		"full.jpg":  {X: 1600, Y: 1200},
		"thumb.jpg": {X: 800, Y: 600},
	})

	t.Run("Shares full image", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(1, "full.jpg", "full.jpg", "F", "A", ""), loader)

		thumbnail, err := instance.GetThumbnail()

		a.Nil(err)
		a.Equal(400, thumbnail.Bounds().Dx())
		a.Equal(300, thumbnail.Bounds().Dy())
		a.Equal(1, loader.LoadCalls("full.jpg"))
		a.Equal(0, loader.ScaledCalls("full.jpg"))
	})
	t.Run("Separate thumbnail", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(2, "full.jpg", "thumb.jpg", "F", "A", ""), loader)

		thumbnail, err := instance.GetThumbnail()
		_, _ = instance.GetThumbnail()

		a.Nil(err)
		a.LessOrEqual(thumbnail.Bounds().Dx(), 400)
		a.LessOrEqual(thumbnail.Bounds().Dy(), 400)
		a.Equal(1, loader.ScaledCalls("thumb.jpg"))
	})
	t.Run("Missing thumbnail", func(t *testing.T) {
		instance := NewInstance(apitype.NewImageRecord(3, "full.jpg", "missing.jpg", "F", "A", ""), loader)

		_, err1 := instance.GetThumbnail()
		_, err2 := instance.GetThumbnail()

		a.ErrorIs(err1, errStubLoad)
		a.ErrorIs(err2, errStubLoad)
		a.Equal(1, loader.ScaledCalls("missing.jpg"))
	})
}
