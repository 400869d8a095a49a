package apitype

// Icon is the closed set of pictograms the gallery draws.
type Icon uint8

const (
	IconClose Icon = iota
	IconChevronLeft
	IconChevronRight
	IconZoomIn
	IconImage
	IconCamera
	IconGrid
	IconMaximize
	IconDownload
	IconShare
)

var icons = []Icon{
	IconClose,
	IconChevronLeft,
	IconChevronRight,
	IconZoomIn,
	IconImage,
	IconCamera,
	IconGrid,
	IconMaximize,
	IconDownload,
	IconShare,
}

func Icons() []Icon {
	all := make([]Icon, len(icons))
	copy(all, icons)
	return all
}

func (s Icon) String() string {
	switch s {
	case IconClose:
		return "Close"
	case IconChevronLeft:
		return "ChevronLeft"
	case IconChevronRight:
		return "ChevronRight"
	case IconZoomIn:
		return "ZoomIn"
	case IconImage:
		return "Image"
	case IconCamera:
		return "Camera"
	case IconGrid:
		return "Grid"
	case IconMaximize:
		return "Maximize"
	case IconDownload:
		return "Download"
	case IconShare:
		return "Share"
	}
	return "UNKNOWN"
}
