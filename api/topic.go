package api

type Topic string

const (
	GalleryLoaded          Topic = "event-gallery-loaded"
	GalleryCategoryChanged Topic = "event-gallery-category-changed"
	GalleryViewModeChanged Topic = "event-gallery-view-mode-changed"

	LightboxChanged Topic = "event-lightbox-changed"

	ImageExportRequest Topic = "event-image-export-request"
	ImageExported      Topic = "event-image-exported"

	CastDeviceSearch      Topic = "event-cast-device-search"
	CastDeviceFound       Topic = "event-cast-device-found"
	CastDevicesSearchDone Topic = "event-cast-devices-search-done"
	CastDeviceSelect      Topic = "event-cast-device-select"
	CastReady             Topic = "event-cast-ready"
	CastStop              Topic = "event-cast-stop"

	ShowError Topic = "event-show-error"
)
