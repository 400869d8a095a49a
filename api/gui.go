package api

import (
	"vincit.fi/photo-gallery/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type DeviceFoundCommand struct {
	DeviceName string
}

type SelectDeviceCommand struct {
	Name           string
	ShowBackground bool
}

type CategoryCommand struct {
	Category apitype.Category
	Visible  int
}

type ViewModeCommand struct {
	ViewMode apitype.ViewMode
}

// LightboxCommand describes the lightbox after a transition. Image is nil
// when the lightbox is closed.
type LightboxCommand struct {
	Open   bool
	Index  int
	Total  int
	Zoomed bool
	Image  *apitype.ImageRecord
}

type ExportCommand struct {
	Image     *apitype.ImageRecord
	Directory string
}

type ExportedCommand struct {
	Image *apitype.ImageRecord
	Path  string
}

type Gui interface {
	Run()

	ShowError(*ErrorCommand)
	ImageExported(*ExportedCommand)

	DeviceFound(*DeviceFoundCommand)
	CastReady()
	CastFindDone()
}
