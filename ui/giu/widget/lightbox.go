package widget

import (
	"fmt"
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/lightbox"
	"vincit.fi/photo-gallery/ui/giu/internal/guiapi"
)

const footerPad = 16

var (
	backdropColor    = color.RGBA{R: 0, G: 0, B: 0, A: 235}
	footerColor      = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	controlColor     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	descriptionColor = color.RGBA{R: 190, G: 190, B: 200, A: 255}
)

// LightboxWidget draws the overlay. Input is handled by the owner with the
// same regions.
type LightboxWidget struct {
	regions lightbox.Regions
	texture guiapi.TexturedImage
	record  *apitype.ImageRecord
	index   int
	total   int
	zoomed  bool
	casting bool
}

func Lightbox(regions lightbox.Regions, texture guiapi.TexturedImage, record *apitype.ImageRecord, index int, total int) *LightboxWidget {
	return &LightboxWidget{
		regions: regions,
		texture: texture,
		record:  record,
		index:   index,
		total:   total,
	}
}

func (s *LightboxWidget) Zoomed(zoomed bool) *LightboxWidget {
	s.zoomed = zoomed
	return s
}

func (s *LightboxWidget) Casting(casting bool) *LightboxWidget {
	s.casting = casting
	return s
}

func (s *LightboxWidget) Build() {
	canvas := giu.GetCanvas()
	r := s.regions

	canvas.AddRectFilled(r.Viewport.Min, r.Viewport.Max, backdropColor, 0, giu.DrawFlagsNone)

	if s.texture.IsReady() {
		canvas.AddImage(s.texture.Texture, r.Image.Min, r.Image.Max)
	} else if s.texture.Failed {
		drawPlaceholder(canvas, r.Image)
	}
	if s.texture.IsLoading {
		drawSpinner(canvas, image.Pt((r.Image.Min.X+r.Image.Max.X)/2, (r.Image.Min.Y+r.Image.Max.Y)/2), 16)
	}

	canvas.AddRectFilled(r.Footer.Min, r.Footer.Max, footerColor, 0, giu.DrawFlagsNone)
	if s.record != nil {
		textX := r.Footer.Min.X + footerPad
		canvas.AddText(image.Pt(textX, r.Footer.Min.Y+footerPad), captionCategoryColor, s.record.Category().String())
		canvas.AddText(image.Pt(textX, r.Footer.Min.Y+footerPad+20), captionColor,
			fmt.Sprintf("%s    %d / %d", s.record.Title(), s.index+1, s.total))
		canvas.AddText(image.Pt(textX, r.Footer.Min.Y+footerPad+40), descriptionColor, s.record.Description())
	}

	DrawIconButton(canvas, apitype.IconClose, r.Close, controlColor, true)
	DrawIconButton(canvas, apitype.IconChevronLeft, r.Prev, controlColor, true)
	DrawIconButton(canvas, apitype.IconChevronRight, r.Next, controlColor, true)
	DrawIconButton(canvas, lightbox.ZoomIcon(s.zoomed), r.Zoom, controlColor, false)
	DrawIconButton(canvas, apitype.IconDownload, r.Download, controlColor, false)
	shareColor := color.Color(controlColor)
	if s.casting {
		shareColor = selectedIndicatorColor
	}
	DrawIconButton(canvas, apitype.IconShare, r.Share, shareColor, false)

	switch r.Hit(giu.GetMousePos()) {
	case lightbox.TargetClose, lightbox.TargetPrev, lightbox.TargetNext,
		lightbox.TargetZoom, lightbox.TargetDownload, lightbox.TargetShare, lightbox.TargetImage:
		giu.SetMouseCursor(giu.MouseCursorHand)
	}
}
