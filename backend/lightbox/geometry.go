package lightbox

import (
	"image"
	"vincit.fi/photo-gallery/api/apitype"
)

const (
	ZoomFactor   = 1.5
	ControlSize  = 48
	FooterHeight = 96
	margin       = 16
)

type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionNext
	ActionPrev
	ActionToggleZoom
	ActionDownload
	ActionShare
)

func (s Action) String() string {
	switch s {
	case ActionClose:
		return "Close"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionToggleZoom:
		return "ToggleZoom"
	case ActionDownload:
		return "Download"
	case ActionShare:
		return "Share"
	default:
		return "None"
	}
}

// Target is the part of the overlay under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetBackdrop
	TargetImage
	TargetFooter
	TargetClose
	TargetPrev
	TargetNext
	TargetZoom
	TargetDownload
	TargetShare
)

// ClickAction is what a click on the target does. The footer outside its
// buttons is part of the backdrop.
func (s Target) ClickAction() Action {
	switch s {
	case TargetBackdrop, TargetFooter, TargetClose:
		return ActionClose
	case TargetImage, TargetZoom:
		return ActionToggleZoom
	case TargetPrev:
		return ActionPrev
	case TargetNext:
		return ActionNext
	case TargetDownload:
		return ActionDownload
	case TargetShare:
		return ActionShare
	default:
		return ActionNone
	}
}

// ZoomIcon is the icon of the zoom control: zoom in while the image is
// fitted and maximize while it is enlarged.
func ZoomIcon(zoomed bool) apitype.Icon {
	if zoomed {
		return apitype.IconMaximize
	} else {
		return apitype.IconZoomIn
	}
}

// Regions are the screen rectangles of the overlay parts.
type Regions struct {
	Viewport image.Rectangle
	Image    image.Rectangle
	Footer   image.Rectangle
	Close    image.Rectangle
	Prev     image.Rectangle
	Next     image.Rectangle
	Zoom     image.Rectangle
	Download image.Rectangle
	Share    image.Rectangle
}

// Layout places the overlay parts into viewport. The image is fitted into
// the area above the footer and enlarged by ZoomFactor when zoomed, in
// which case it may overflow the viewport.
func Layout(viewport image.Rectangle, imageSize image.Point, zoomed bool) Regions {
	control := image.Pt(ControlSize, ControlSize)
	footer := image.Rect(viewport.Min.X, viewport.Max.Y-FooterHeight, viewport.Max.X, viewport.Max.Y)
	stage := image.Rect(viewport.Min.X+ControlSize+2*margin, viewport.Min.Y+ControlSize+2*margin,
		viewport.Max.X-ControlSize-2*margin, footer.Min.Y-margin)

	regions := Regions{
		Viewport: viewport,
		Footer:   footer,
	}

	closeMin := image.Pt(viewport.Max.X-margin-ControlSize, viewport.Min.Y+margin)
	regions.Close = image.Rectangle{Min: closeMin, Max: closeMin.Add(control)}

	middleY := stage.Min.Y + (stage.Dy()-ControlSize)/2
	prevMin := image.Pt(viewport.Min.X+margin, middleY)
	regions.Prev = image.Rectangle{Min: prevMin, Max: prevMin.Add(control)}
	nextMin := image.Pt(viewport.Max.X-margin-ControlSize, middleY)
	regions.Next = image.Rectangle{Min: nextMin, Max: nextMin.Add(control)}

	footerY := footer.Min.Y + (footer.Dy()-ControlSize)/2
	shareMin := image.Pt(footer.Max.X-margin-ControlSize, footerY)
	regions.Share = image.Rectangle{Min: shareMin, Max: shareMin.Add(control)}
	downloadMin := shareMin.Sub(image.Pt(ControlSize+margin/2, 0))
	regions.Download = image.Rectangle{Min: downloadMin, Max: downloadMin.Add(control)}
	zoomMin := downloadMin.Sub(image.Pt(ControlSize+margin/2, 0))
	regions.Zoom = image.Rectangle{Min: zoomMin, Max: zoomMin.Add(control)}

	if imageSize.X > 0 && imageSize.Y > 0 && !stage.Empty() {
		fitted := apitype.PointOfScaledToFit(imageSize, apitype.SizeOf(stage.Dx(), stage.Dy()))
		width, height := fitted.Width(), fitted.Height()
		if zoomed {
			width = int(float64(width) * ZoomFactor)
			height = int(float64(height) * ZoomFactor)
		}
		center := image.Pt(stage.Min.X+stage.Dx()/2, stage.Min.Y+stage.Dy()/2)
		regions.Image = image.Rect(center.X-width/2, center.Y-height/2, center.X-width/2+width, center.Y-height/2+height)
	}
	return regions
}

// Hit returns the topmost part under p. Controls are drawn over the image
// and the image over the footer.
func (s Regions) Hit(p image.Point) Target {
	if !p.In(s.Viewport) {
		return TargetNone
	}
	switch {
	case p.In(s.Close):
		return TargetClose
	case p.In(s.Prev):
		return TargetPrev
	case p.In(s.Next):
		return TargetNext
	case p.In(s.Zoom):
		return TargetZoom
	case p.In(s.Download):
		return TargetDownload
	case p.In(s.Share):
		return TargetShare
	case p.In(s.Image):
		return TargetImage
	case p.In(s.Footer):
		return TargetFooter
	default:
		return TargetBackdrop
	}
}
