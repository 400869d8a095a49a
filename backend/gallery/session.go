package gallery

import (
	"github.com/google/uuid"
	"sync"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/catalog"
	"vincit.fi/photo-gallery/backend/lightbox"
	"vincit.fi/photo-gallery/common/logger"
)

// Session owns all gallery state of one window: filter, lightbox, view mode
// and the loading flag. Changes are published on the sender after the
// session lock has been released.
type Session struct {
	id       string
	catalog  *catalog.Catalog
	filter   *Filter
	lightbox *lightbox.Controller
	viewMode apitype.ViewMode
	loading  bool
	sender   api.Sender
	mux      sync.Mutex
}

func NewSession(catalog *catalog.Catalog, lock lightbox.ScrollLock, sender api.Sender) *Session {
	session := &Session{
		id:       uuid.New().String(),
		catalog:  catalog,
		filter:   NewFilter(catalog.Categories(), catalog.Images()),
		viewMode: apitype.ViewGrid,
		loading:  true,
		sender:   sender,
	}
	session.lightbox = lightbox.NewController(session.filter.VisibleCount, lock)
	logger.Debug.Printf("Session %s started with %d images", session.id, catalog.Len())
	return session
}

func (s *Session) Categories() []apitype.Category {
	return s.catalog.Categories().Categories()
}

func (s *Session) SelectedCategory() apitype.Category {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.filter.SelectedCategory()
}

// SelectCategory changes the filter. An open lightbox is clamped into the
// new list and closed if nothing is visible anymore.
func (s *Session) SelectCategory(category apitype.Category) {
	s.mux.Lock()
	s.filter.SelectCategory(category)
	wasOpen := s.lightbox.IsOpen()
	s.lightbox.Clamp()
	visible := s.filter.VisibleCount()
	lightboxCommand := s.lightboxCommand()
	s.mux.Unlock()

	logger.Debug.Printf("Category '%s' selected, %d visible", category, visible)
	s.sender.SendCommandToTopic(api.GalleryCategoryChanged, &api.CategoryCommand{
		Category: category,
		Visible:  visible,
	})
	if wasOpen {
		s.sender.SendCommandToTopic(api.LightboxChanged, lightboxCommand)
	}
}

func (s *Session) VisibleImages() []*apitype.ImageRecord {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.filter.VisibleImages()
}

func (s *Session) ViewMode() apitype.ViewMode {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.viewMode
}

func (s *Session) ToggleViewMode() {
	s.mux.Lock()
	s.viewMode = s.viewMode.Toggle()
	viewMode := s.viewMode
	s.mux.Unlock()

	s.sender.SendCommandToTopic(api.GalleryViewModeChanged, &api.ViewModeCommand{ViewMode: viewMode})
}

func (s *Session) IsLoading() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loading
}

// FinishLoading hides the loading screen. Only the first call publishes.
func (s *Session) FinishLoading() {
	s.mux.Lock()
	wasLoading := s.loading
	s.loading = false
	s.mux.Unlock()

	if wasLoading {
		logger.Info.Printf("Gallery ready")
		s.sender.SendToTopic(api.GalleryLoaded)
	}
}

func (s *Session) Lightbox() lightbox.State {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.lightbox.State()
}

// CurrentImage is the image shown in the lightbox or nil when closed.
func (s *Session) CurrentImage() *apitype.ImageRecord {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.currentImage()
}

func (s *Session) currentImage() *apitype.ImageRecord {
	state := s.lightbox.State()
	if !state.Open {
		return nil
	}
	visible := s.filter.VisibleImages()
	if state.Index < len(visible) {
		return visible[state.Index]
	}
	return nil
}

// OpenLightbox opens the image at index of the visible list.
func (s *Session) OpenLightbox(index int) bool {
	return s.transition(func() bool {
		return s.lightbox.Open(index)
	})
}

func (s *Session) CloseLightbox() {
	s.Apply(lightbox.ActionClose)
}

func (s *Session) Next() {
	s.Apply(lightbox.ActionNext)
}

func (s *Session) Prev() {
	s.Apply(lightbox.ActionPrev)
}

func (s *Session) ToggleZoom() {
	s.Apply(lightbox.ActionToggleZoom)
}

// Apply runs a lightbox transition. Actions that are not transitions, such
// as Download, leave the state alone.
func (s *Session) Apply(action lightbox.Action) bool {
	return s.transition(func() bool {
		return s.lightbox.Apply(action)
	})
}

func (s *Session) transition(fn func() bool) bool {
	s.mux.Lock()
	changed := fn()
	command := s.lightboxCommand()
	s.mux.Unlock()

	if changed {
		logger.Trace.Printf("Lightbox: open=%t index=%d zoomed=%t", command.Open, command.Index, command.Zoomed)
		s.sender.SendCommandToTopic(api.LightboxChanged, command)
	}
	return changed
}

func (s *Session) lightboxCommand() *api.LightboxCommand {
	state := s.lightbox.State()
	return &api.LightboxCommand{
		Open:   state.Open,
		Index:  state.Index,
		Total:  s.filter.VisibleCount(),
		Zoomed: state.Zoomed,
		Image:  s.currentImage(),
	}
}

func (s *Session) IsScrollLocked() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.lightbox.IsLocked()
}

// Close ends the session. The lightbox is closed and the scroll lock
// released even if it was never opened.
func (s *Session) Close() {
	s.mux.Lock()
	wasOpen := s.lightbox.IsOpen()
	s.lightbox.Release()
	s.mux.Unlock()

	if wasOpen {
		s.sender.SendCommandToTopic(api.LightboxChanged, &api.LightboxCommand{})
	}
	logger.Debug.Printf("Session %s closed", s.id)
}
