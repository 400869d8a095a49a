package gallery

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"sync"
	"testing"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/catalog"
	"vincit.fi/photo-gallery/backend/lightbox"
	"vincit.fi/photo-gallery/common/event"
)

type sentCommand struct {
	topic   api.Topic
	command apitype.Command
}

type MockSender struct {
	sent []sentCommand
	mux  sync.Mutex

	api.Sender
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.SendCommandToTopic(topic, nil)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sent = append(s.sent, sentCommand{topic: topic, command: command})
}

func (s *MockSender) SendError(message string, err error) {
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}

func (s *MockSender) Sent(topic api.Topic) []apitype.Command {
	s.mux.Lock()
	defer s.mux.Unlock()
	var commands []apitype.Command
	for _, sent := range s.sent {
		if sent.topic == topic {
			commands = append(commands, sent.command)
		}
	}
	return commands
}

func (s *MockSender) LastLightbox() *api.LightboxCommand {
	commands := s.Sent(api.LightboxChanged)
	if len(commands) == 0 {
		return nil
	}
	return commands[len(commands)-1].(*api.LightboxCommand)
}

type testLock struct {
	held bool
}

func (s *testLock) Lock() {
	s.held = true
}

func (s *testLock) Unlock() {
	s.held = false
}

func newTestSession() (*Session, *MockSender, *testLock) {
	sender := &MockSender{}
	lock := &testLock{}
	session := NewSession(catalog.NewCatalog(testCategories(), testImages()), lock, sender)
	return session, sender, lock
}

// newQuietSession is for tests that do not look at published events.
func newQuietSession() (*Session, *testLock) {
	lock := &testLock{}
	session := NewSession(catalog.NewCatalog(testCategories(), testImages()), lock, event.InitDevNullBus())
	return session, lock
}

func TestSession_Defaults(t *testing.T) {
	a := assert.New(t)

	session, _, lock := newTestSession()

	a.Equal(all, session.SelectedCategory())
	a.Equal([]apitype.Category{all, categoryA, categoryB, categoryC}, session.Categories())
	a.Equal(apitype.ViewGrid, session.ViewMode())
	a.True(session.IsLoading())
	a.False(session.Lightbox().Open)
	a.Nil(session.CurrentImage())
	a.False(lock.held)
}

func TestSession_SelectCategory(t *testing.T) {
	a := assert.New(t)

	session, sender, _ := newTestSession()

	session.SelectCategory(categoryA)
	a.Equal([]apitype.ImageId{1, 2}, ids(session.VisibleImages()))
	session.SelectCategory(categoryB)
	a.Equal([]apitype.ImageId{3}, ids(session.VisibleImages()))
	session.SelectCategory(all)
	a.Equal([]apitype.ImageId{1, 2, 3}, ids(session.VisibleImages()))

	commands := sender.Sent(api.GalleryCategoryChanged)
	require.Len(t, commands, 3)
	a.Equal(&api.CategoryCommand{Category: categoryA, Visible: 2}, commands[0])
	a.Equal(&api.CategoryCommand{Category: categoryB, Visible: 1}, commands[1])
	a.Equal(&api.CategoryCommand{Category: all, Visible: 3}, commands[2])
	a.Empty(sender.Sent(api.LightboxChanged))
}

func TestSession_EmptyCategory(t *testing.T) {
	a := assert.New(t)

	session, lock := newQuietSession()

	session.SelectCategory(categoryC)
	a.Empty(session.VisibleImages())

	a.False(session.OpenLightbox(0))
	session.Next()
	session.Prev()
	a.False(session.Lightbox().Open)
	a.False(lock.held)
}

func TestSession_LightboxOpensAtFilteredIndex(t *testing.T) {
	a := assert.New(t)

	session, sender, _ := newTestSession()
	session.SelectCategory(categoryB)

	a.True(session.OpenLightbox(0))
	a.Equal(apitype.ImageId(3), session.CurrentImage().Id())

	command := sender.LastLightbox()
	require.NotNil(t, command)
	a.True(command.Open)
	a.Equal(0, command.Index)
	a.Equal(1, command.Total)
	a.Equal(apitype.ImageId(3), command.Image.Id())
}

func TestSession_GridClickOpensFilteredImage(t *testing.T) {
	a := assert.New(t)

	session, lock := newQuietSession()
	session.SelectCategory(categoryA)

	cells := GridLayout(len(session.VisibleImages()), 1000, 300, 10)
	index := CellAt(cells, image.Pt(400, 100))
	a.Equal(1, index)
	a.True(session.OpenLightbox(index))
	a.Equal(apitype.ImageId(2), session.CurrentImage().Id())
	a.True(lock.held)

	session.CloseLightbox()
	a.Equal(-1, CellAt(cells, image.Pt(331, 100)))
	a.False(session.OpenLightbox(CellAt(cells, image.Pt(800, 100))))
	a.False(lock.held)
}

func TestSession_Wraparound(t *testing.T) {
	a := assert.New(t)

	session, _ := newQuietSession()

	session.OpenLightbox(0)
	session.Prev()
	a.Equal(2, session.Lightbox().Index)
	a.Equal(apitype.ImageId(3), session.CurrentImage().Id())
	session.Next()
	a.Equal(0, session.Lightbox().Index)
}

func TestSession_ScrollLockFollowsLightbox(t *testing.T) {
	a := assert.New(t)

	session, lock := newQuietSession()

	session.OpenLightbox(1)
	a.True(lock.held)
	a.True(session.IsScrollLocked())

	session.ToggleZoom()
	session.Next()
	a.True(lock.held)

	session.CloseLightbox()
	a.False(lock.held)
	a.False(session.IsScrollLocked())

	session.OpenLightbox(2)
	a.True(lock.held)
	session.Close()
	a.False(lock.held)
	a.False(session.Lightbox().Open)
}

func TestSession_CloseReleasesOnPanic(t *testing.T) {
	a := assert.New(t)

	session, lock := newQuietSession()

	func() {
		defer func() {
			_ = recover()
		}()
		defer session.Close()

		session.OpenLightbox(0)
		panic("render failed")
	}()

	a.False(lock.held)
}

func TestSession_FilterChangeWhileOpen(t *testing.T) {
	a := assert.New(t)

	session, sender, lock := newTestSession()

	session.OpenLightbox(2)
	session.SelectCategory(categoryA)
	a.True(session.Lightbox().Open)
	a.Equal(1, session.Lightbox().Index)
	a.Equal(apitype.ImageId(2), session.CurrentImage().Id())
	a.Equal(2, sender.LastLightbox().Total)

	session.SelectCategory(categoryC)
	a.False(session.Lightbox().Open)
	a.False(lock.held)
	a.False(sender.LastLightbox().Open)
}

func TestSession_Apply(t *testing.T) {
	a := assert.New(t)

	session, sender, _ := newTestSession()
	session.OpenLightbox(0)
	before := len(sender.Sent(api.LightboxChanged))

	a.False(session.Apply(lightbox.ActionDownload))
	a.False(session.Apply(lightbox.ActionShare))
	a.Len(sender.Sent(api.LightboxChanged), before)

	a.True(session.Apply(lightbox.ActionToggleZoom))
	a.True(session.Lightbox().Zoomed)
	a.True(sender.LastLightbox().Zoomed)
}

func TestSession_ToggleViewMode(t *testing.T) {
	a := assert.New(t)

	session, sender, _ := newTestSession()

	session.ToggleViewMode()
	a.Equal(apitype.ViewMasonry, session.ViewMode())
	session.ToggleViewMode()
	a.Equal(apitype.ViewGrid, session.ViewMode())

	commands := sender.Sent(api.GalleryViewModeChanged)
	require.Len(t, commands, 2)
	a.Equal(&api.ViewModeCommand{ViewMode: apitype.ViewMasonry}, commands[0])
}

func TestSession_FinishLoading(t *testing.T) {
	a := assert.New(t)

	session, sender, _ := newTestSession()

	session.FinishLoading()
	session.FinishLoading()

	a.False(session.IsLoading())
	a.Len(sender.Sent(api.GalleryLoaded), 1)
}
