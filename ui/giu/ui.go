package ui

import (
	"errors"
	"fmt"
	"github.com/AllenDang/giu"
	"github.com/OpenDiablo2/dialog"
	"image"
	"image/color"
	"sync"
	"time"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/gallery"
	"vincit.fi/photo-gallery/backend/lightbox"
	"vincit.fi/photo-gallery/common"
	"vincit.fi/photo-gallery/common/logger"
	"vincit.fi/photo-gallery/common/util"
	"vincit.fi/photo-gallery/ui/giu/internal"
	"vincit.fi/photo-gallery/ui/giu/widget"
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	headerIconSize      = 28
	castPopupName       = "Share to a device"
	castButtonWidth     = 260
	castButtonHeight    = 28
)

var (
	headerColor   = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	defaultAspect = image.Pt(4, 3)
)

type Ui struct {
	win                *giu.MasterWindow
	session            *gallery.Session
	sender             api.Sender
	imageCache         api.ImageStore
	textures           *internal.TextureManager
	categoryKeyManager *internal.CategoryKeyManager
	pointer            lightbox.Pointer
	visibleCount       int
	viewMode           apitype.ViewMode
	downloadDir        string
	scheduled          []func()
	scheduleMux        sync.Mutex

	castDevices        *util.Set[string]
	castSearching      bool
	casting            bool
	showCastBackground bool
	openCastPopup      bool
	castPopupOpen      bool

	api.Gui
}

func NewUi(params *common.Params, session *gallery.Session, broker api.Sender, imageCache api.ImageStore) *Ui {
	gui := &Ui{
		win:                giu.NewMasterWindow("Photo Gallery", defaultWindowWidth, defaultWindowHeight, 0),
		session:            session,
		sender:             broker,
		imageCache:         imageCache,
		textures:           internal.NewTextureManager(imageCache),
		downloadDir:        params.DownloadDir(),
		visibleCount:       len(session.VisibleImages()),
		viewMode:           session.ViewMode(),
		castDevices:        util.NewSet[string](),
		showCastBackground: true,
	}

	gui.categoryKeyManager = internal.NewCategoryKeyManager(func(def *internal.CategoryDef) {
		logger.Debug.Printf("Select category '%s' with key %s", def.Name, def.Shortcut)
		gui.session.SelectCategory(def.Name)
	})
	gui.categoryKeyManager.Reset(session.Categories())
	return gui
}

// Schedule runs fn on the render loop before the next frame. Event broker
// callbacks use it so that all state changes happen on the UI thread.
func (s *Ui) Schedule(fn func()) {
	s.scheduleMux.Lock()
	s.scheduled = append(s.scheduled, fn)
	s.scheduleMux.Unlock()
	giu.Update()
}

func (s *Ui) runScheduled() {
	s.scheduleMux.Lock()
	scheduled := s.scheduled
	s.scheduled = nil
	s.scheduleMux.Unlock()

	for _, fn := range scheduled {
		fn()
	}
}

// Run blocks until the window is closed. The session is closed on every
// exit path so the scroll lock never outlives the window.
func (s *Ui) Run() {
	defer s.session.Close()
	s.win.Run(s.renderFrame)
}

func (s *Ui) renderFrame() {
	renderStart := time.Now()
	s.runScheduled()

	if s.session.IsLoading() {
		giu.SingleWindow().Layout(
			widget.Loading("Loading gallery..."),
			giu.PrepareMsgbox(),
		)
		return
	}

	width, height := s.win.GetSize()
	state := s.session.Lightbox()
	images := s.session.VisibleImages()

	giu.SingleWindow().Layout(
		s.header(),
		widget.CategoryBar(s.session.Categories(), s.session.SelectedCategory(), s.session.SelectCategory),
		giu.Separator(),
		widget.GalleryGrid(images, s.session.ViewMode(), s.textures, func(index int) {
			logger.Debug.Printf("Open image at %d", index)
			s.session.OpenLightbox(index)
		}).
			Interactive(!state.Open).
			ScrollLocked(s.session.IsScrollLocked()),
		giu.PrepareMsgbox(),
	)

	if state.Open {
		s.buildLightbox(width, height, state, len(images))
	}
	s.handleKeyPress(state.Open)

	renderTime := time.Since(renderStart)
	if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Rendered UI in %s", renderTime)
	} else if renderTime >= 10*time.Millisecond {
		logger.Debug.Printf("Rendered UI in %s", renderTime)
	}
}

func (s *Ui) header() giu.Widget {
	viewIcon := apitype.IconGrid
	if s.viewMode == apitype.ViewMasonry {
		viewIcon = apitype.IconMaximize
	}

	return giu.Row(
		widget.Icon(apitype.IconCamera, headerIconSize, headerColor),
		giu.Label("Photo Gallery"),
		giu.Dummy(-240, headerIconSize),
		giu.Label(s.headerStatus()),
		widget.IconButton(viewIcon, headerIconSize, headerColor, s.session.ToggleViewMode),
	)
}

func (s *Ui) headerStatus() string {
	if s.visibleCount == 1 {
		return fmt.Sprintf("1 image | %s", s.viewMode)
	}
	return fmt.Sprintf("%d images | %s", s.visibleCount, s.viewMode)
}

func (s *Ui) buildLightbox(width int, height int, state lightbox.State, total int) {
	record := s.session.CurrentImage()
	if record == nil {
		return
	}

	requested := apitype.SizeOf(width, height)
	if state.Zoomed {
		requested = apitype.SizeFromRectangle(image.Rect(0, 0, width, height), lightbox.ZoomFactor)
	}
	texture := s.textures.GetFullTexture(record, requested)
	imageSize := image.Pt(int(texture.Width), int(texture.Height))
	if imageSize.X <= 0 || imageSize.Y <= 0 {
		imageSize = defaultAspect
	}
	regions := lightbox.Layout(image.Rect(0, 0, width, height), imageSize, state.Zoomed)

	giu.Window("Lightbox").
		Flags(giu.WindowFlagsNoTitleBar|
			giu.WindowFlagsNoResize|
			giu.WindowFlagsNoMove|
			giu.WindowFlagsNoCollapse|
			giu.WindowFlagsNoScrollbar|
			giu.WindowFlagsNoScrollWithMouse).
		Pos(0, 0).
		Size(float32(width), float32(height)).
		Layout(
			widget.Lightbox(regions, texture, record, state.Index, total).
				Zoomed(state.Zoomed).
				Casting(s.casting),
			s.castPopup(),
		)

	if s.castPopupOpen {
		s.pointer.Cancel()
	} else {
		s.handlePointer(regions)
	}
}

func (s *Ui) handlePointer(regions lightbox.Regions) {
	mousePos := giu.GetMousePos()
	if giu.IsMouseClicked(giu.MouseButtonLeft) {
		s.pointer.Press(regions.Hit(mousePos), mousePos.X)
	} else if s.pointer.IsDown() {
		s.pointer.Move(mousePos.X)
	}
	if s.pointer.IsDown() && giu.IsMouseReleased(giu.MouseButtonLeft) {
		s.applyAction(s.pointer.Release(regions.Hit(mousePos)))
	}
}

func (s *Ui) handleKeyPress(open bool) {
	if s.castPopupOpen {
		return
	}
	if action := internal.LightboxKeyAction(open); action != lightbox.ActionNone {
		logger.Debug.Printf("Key action %s", action)
		s.applyAction(action)
		return
	}
	if !open {
		s.categoryKeyManager.HandleKeys()
	}
}

func (s *Ui) applyAction(action lightbox.Action) {
	switch action {
	case lightbox.ActionNone:
	case lightbox.ActionDownload:
		s.download()
	case lightbox.ActionShare:
		s.share()
	default:
		s.session.Apply(action)
	}
}

func (s *Ui) download() {
	record := s.session.CurrentImage()
	if record == nil {
		return
	}
	if s.downloadDir != "" {
		s.sendExport(record, s.downloadDir)
		return
	}

	go func() {
		directory, err := dialog.Directory().Title("Download to").Browse()
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Debug.Printf("Download cancelled")
		} else if err != nil {
			s.sender.SendError("Could not select a directory", err)
		} else {
			s.sendExport(record, directory)
		}
	}()
}

func (s *Ui) sendExport(record *apitype.ImageRecord, directory string) {
	s.sender.SendCommandToTopic(api.ImageExportRequest, &api.ExportCommand{
		Image:     record,
		Directory: directory,
	})
}

func (s *Ui) share() {
	s.castDevices.Clear()
	s.castSearching = true
	s.openCastPopup = true
	s.sender.SendToTopic(api.CastDeviceSearch)
}

func (s *Ui) closeCastPopup() {
	s.castPopupOpen = false
	giu.CloseCurrentPopup()
}

func (s *Ui) castPopup() giu.Widget {
	var devices []giu.Widget
	for _, name := range s.castDevices.Values() {
		deviceName := name
		devices = append(devices, giu.Button(deviceName).Size(castButtonWidth, castButtonHeight).OnClick(func() {
			s.sender.SendCommandToTopic(api.CastDeviceSelect, &api.SelectDeviceCommand{
				Name:           deviceName,
				ShowBackground: s.showCastBackground,
			})
			s.closeCastPopup()
		}))
	}

	status := ""
	if s.castSearching {
		status = "Searching for devices..."
	} else if s.castDevices.Len() == 0 {
		status = "No devices found"
	}

	var actions []giu.Widget
	if s.casting {
		actions = append(actions, giu.Button("Stop casting").OnClick(func() {
			s.sender.SendToTopic(api.CastStop)
			s.casting = false
			s.closeCastPopup()
		}))
	}
	actions = append(actions, giu.Button("Close").OnClick(s.closeCastPopup))

	return giu.Layout{
		giu.Custom(func() {
			if s.openCastPopup {
				giu.OpenPopup(castPopupName)
				s.openCastPopup = false
				s.castPopupOpen = true
			}
		}),
		giu.PopupModal(castPopupName).Layout(
			giu.Label(status),
			giu.Column(devices...),
			giu.Checkbox("Show blurred background", &s.showCastBackground),
			giu.Separator(),
			giu.Row(actions...),
		),
	}
}

func (s *Ui) LightboxChanged(command *api.LightboxCommand) {
	if !command.Open {
		logger.Debug.Printf("Lightbox closed, releasing scaled images (%.1f MB cached)", s.imageCache.GetSizeInMB())
		s.textures.ReleaseFullTexture()
		s.imageCache.Purge()
	}
}

func (s *Ui) CategoryChanged(command *api.CategoryCommand) {
	s.visibleCount = command.Visible
}

func (s *Ui) ViewModeChanged(command *api.ViewModeCommand) {
	s.viewMode = command.ViewMode
}

func (s *Ui) DeviceFound(command *api.DeviceFoundCommand) {
	if !s.castDevices.Add(command.DeviceName) {
		logger.Trace.Printf("Device '%s' already listed", command.DeviceName)
	}
}

func (s *Ui) CastReady() {
	s.casting = true
}

func (s *Ui) CastFindDone() {
	s.castSearching = false
}

func (s *Ui) ImageExported(command *api.ExportedCommand) {
	logger.Info.Printf("Downloaded %s", command.Path)
	giu.Msgbox("Downloaded", "Image saved to "+command.Path)
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}
