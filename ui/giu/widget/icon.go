package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"vincit.fi/photo-gallery/api/apitype"
)

const iconThickness = 2

type IconWidget struct {
	icon  apitype.Icon
	size  int
	color color.Color
}

func Icon(icon apitype.Icon, size int, col color.Color) *IconWidget {
	return &IconWidget{
		icon:  icon,
		size:  size,
		color: col,
	}
}

func (s *IconWidget) Build() {
	start := giu.GetCursorScreenPos()
	DrawIcon(giu.GetCanvas(), s.icon, image.Rectangle{Min: start, Max: start.Add(image.Pt(s.size, s.size))}, s.color)
	giu.Dummy(float32(s.size), float32(s.size)).Build()
}

func scaled(r image.Rectangle, fx float64, fy float64) image.Point {
	return image.Pt(r.Min.X+int(float64(r.Dx())*fx), r.Min.Y+int(float64(r.Dy())*fy))
}

// DrawIcon draws icon inside r.
func DrawIcon(canvas *giu.Canvas, icon apitype.Icon, r image.Rectangle, col color.Color) {
	p := func(fx float64, fy float64) image.Point {
		return scaled(r, fx, fy)
	}
	radius := func(f float64) float32 {
		return float32(float64(r.Dx()) * f)
	}

	switch icon {
	case apitype.IconClose:
		canvas.AddLine(p(.2, .2), p(.8, .8), col, iconThickness)
		canvas.AddLine(p(.8, .2), p(.2, .8), col, iconThickness)
	case apitype.IconChevronLeft:
		canvas.AddLine(p(.65, .15), p(.3, .5), col, iconThickness)
		canvas.AddLine(p(.3, .5), p(.65, .85), col, iconThickness)
	case apitype.IconChevronRight:
		canvas.AddLine(p(.35, .15), p(.7, .5), col, iconThickness)
		canvas.AddLine(p(.7, .5), p(.35, .85), col, iconThickness)
	case apitype.IconZoomIn:
		canvas.AddCircle(p(.42, .42), radius(.28), col, 24, iconThickness)
		canvas.AddLine(p(.62, .62), p(.88, .88), col, iconThickness)
		canvas.AddLine(p(.3, .42), p(.54, .42), col, iconThickness)
		canvas.AddLine(p(.42, .3), p(.42, .54), col, iconThickness)
	case apitype.IconImage:
		canvas.AddRect(p(.1, .15), p(.9, .85), col, 2, giu.DrawFlagsNone, iconThickness)
		canvas.AddCircleFilled(p(.32, .36), radius(.07), col)
		canvas.AddTriangleFilled(p(.18, .78), p(.45, .45), p(.65, .78), col)
		canvas.AddTriangleFilled(p(.5, .78), p(.68, .56), p(.82, .78), col)
	case apitype.IconCamera:
		canvas.AddRect(p(.1, .3), p(.9, .82), col, 3, giu.DrawFlagsNone, iconThickness)
		canvas.AddRectFilled(p(.35, .18), p(.65, .3), col, 0, giu.DrawFlagsNone)
		canvas.AddCircle(p(.5, .56), radius(.16), col, 24, iconThickness)
	case apitype.IconGrid:
		canvas.AddRect(p(.15, .15), p(.45, .45), col, 0, giu.DrawFlagsNone, iconThickness)
		canvas.AddRect(p(.55, .15), p(.85, .45), col, 0, giu.DrawFlagsNone, iconThickness)
		canvas.AddRect(p(.15, .55), p(.45, .85), col, 0, giu.DrawFlagsNone, iconThickness)
		canvas.AddRect(p(.55, .55), p(.85, .85), col, 0, giu.DrawFlagsNone, iconThickness)
	case apitype.IconMaximize:
		canvas.AddLine(p(.15, .4), p(.15, .15), col, iconThickness)
		canvas.AddLine(p(.15, .15), p(.4, .15), col, iconThickness)
		canvas.AddLine(p(.6, .15), p(.85, .15), col, iconThickness)
		canvas.AddLine(p(.85, .15), p(.85, .4), col, iconThickness)
		canvas.AddLine(p(.85, .6), p(.85, .85), col, iconThickness)
		canvas.AddLine(p(.85, .85), p(.6, .85), col, iconThickness)
		canvas.AddLine(p(.4, .85), p(.15, .85), col, iconThickness)
		canvas.AddLine(p(.15, .85), p(.15, .6), col, iconThickness)
	case apitype.IconDownload:
		canvas.AddLine(p(.5, .12), p(.5, .62), col, iconThickness)
		canvas.AddLine(p(.3, .45), p(.5, .65), col, iconThickness)
		canvas.AddLine(p(.7, .45), p(.5, .65), col, iconThickness)
		canvas.AddLine(p(.15, .7), p(.15, .85), col, iconThickness)
		canvas.AddLine(p(.15, .85), p(.85, .85), col, iconThickness)
		canvas.AddLine(p(.85, .85), p(.85, .7), col, iconThickness)
	case apitype.IconShare:
		canvas.AddLine(p(.7, .22), p(.3, .5), col, iconThickness)
		canvas.AddLine(p(.3, .5), p(.7, .78), col, iconThickness)
		canvas.AddCircleFilled(p(.7, .22), radius(.12), col)
		canvas.AddCircleFilled(p(.3, .5), radius(.12), col)
		canvas.AddCircleFilled(p(.7, .78), radius(.12), col)
	}
}

var (
	iconButtonHoverColor = color.RGBA{R: 255, G: 255, B: 255, A: 48}
	iconButtonBackground = color.RGBA{R: 0, G: 0, B: 0, A: 96}
)

// IconButtonWidget is a clickable icon. Unlike giu.Button it can be placed
// anywhere on the canvas.
type IconButtonWidget struct {
	icon       apitype.Icon
	size       int
	color      color.Color
	background bool
	onClick    func()
}

func IconButton(icon apitype.Icon, size int, col color.Color, onClick func()) *IconButtonWidget {
	return &IconButtonWidget{
		icon:    icon,
		size:    size,
		color:   col,
		onClick: onClick,
	}
}

func (s *IconButtonWidget) Background(background bool) *IconButtonWidget {
	s.background = background
	return s
}

func (s *IconButtonWidget) Build() {
	start := giu.GetCursorScreenPos()
	area := image.Rectangle{Min: start, Max: start.Add(image.Pt(s.size, s.size))}
	DrawIconButton(giu.GetCanvas(), s.icon, area, s.color, s.background)
	if giu.GetMousePos().In(area) {
		giu.SetMouseCursor(giu.MouseCursorHand)
		if giu.IsMouseClicked(giu.MouseButtonLeft) && s.onClick != nil {
			s.onClick()
		}
	}
	giu.Dummy(float32(s.size), float32(s.size)).Build()
}

// DrawIconButton only draws. Clicks are handled by the caller.
func DrawIconButton(canvas *giu.Canvas, icon apitype.Icon, area image.Rectangle, col color.Color, background bool) {
	if background {
		canvas.AddRectFilled(area.Min, area.Max, iconButtonBackground, float32(area.Dx()/2), giu.DrawFlagsNone)
	}
	if giu.GetMousePos().In(area) {
		canvas.AddRectFilled(area.Min, area.Max, iconButtonHoverColor, float32(area.Dx()/2), giu.DrawFlagsNone)
	}
	inset := area.Dx() / 5
	DrawIcon(canvas, icon, area.Inset(inset), col)
}
