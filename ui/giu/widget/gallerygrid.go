package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/gallery"
	"vincit.fi/photo-gallery/ui/giu/internal/guiapi"
)

const (
	minCellWidth = 280
	cellGap      = 12
	captionPad   = 8
)

var (
	cellBackgroundColor    = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	imageHoverOverlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	captionBackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	placeholderColor       = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	captionColor           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	captionCategoryColor   = color.RGBA{R: 140, G: 184, B: 255, A: 255}
)

type ThumbnailSource interface {
	GetThumbnailTexture(record *apitype.ImageRecord) guiapi.TexturedImage
}

// GalleryGridWidget shows the visible images either as a grid of 4:3 cells
// or as masonry columns. Clicking an image reports its index in images.
type GalleryGridWidget struct {
	images       []*apitype.ImageRecord
	viewMode     apitype.ViewMode
	textures     ThumbnailSource
	interactive  bool
	scrollLocked bool
	onOpen       func(index int)
}

func GalleryGrid(images []*apitype.ImageRecord, viewMode apitype.ViewMode, textures ThumbnailSource, onOpen func(index int)) *GalleryGridWidget {
	return &GalleryGridWidget{
		images:      images,
		viewMode:    viewMode,
		textures:    textures,
		interactive: true,
		onOpen:      onOpen,
	}
}

// Interactive disables hover and clicks when something is drawn on top of
// the grid.
func (s *GalleryGridWidget) Interactive(interactive bool) *GalleryGridWidget {
	s.interactive = interactive
	return s
}

func (s *GalleryGridWidget) ScrollLocked(locked bool) *GalleryGridWidget {
	s.scrollLocked = locked
	return s
}

func (s *GalleryGridWidget) Build() {
	origin := giu.GetCursorScreenPos()
	regionWidth, regionHeight := giu.GetAvailableRegion()
	visibleArea := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(int(regionWidth), int(regionHeight)))}

	if len(s.images) == 0 {
		EmptyState("No images in this category").Build()
		return
	}

	var flags giu.WindowFlags
	if s.scrollLocked {
		flags |= giu.WindowFlagsNoScrollWithMouse
	}

	giu.Child().
		Layout(giu.Custom(func() {
			s.buildCells(visibleArea)
		})).
		Border(false).
		Size(regionWidth, regionHeight).
		Flags(flags).
		Build()
}

func (s *GalleryGridWidget) buildCells(visibleArea image.Rectangle) {
	width, _ := giu.GetAvailableRegion()
	pos := giu.GetCursorScreenPos()
	canvas := giu.GetCanvas()
	mousePos := giu.GetMousePos()

	cells, textures := s.layout(int(width))
	hovered := -1
	if s.interactive && mousePos.In(visibleArea) {
		hovered = gallery.CellAt(cells, mousePos.Sub(pos))
	}

	for i, cell := range cells {
		area := cell.Add(pos)
		if !area.Overlaps(visibleArea) {
			continue
		}
		texture := textures[i]
		if texture == nil {
			thumbnail := s.textures.GetThumbnailTexture(s.images[i])
			texture = &thumbnail
		}

		canvas.AddRectFilled(area.Min, area.Max, cellBackgroundColor, 4, giu.DrawFlagsNone)
		if texture.IsReady() {
			fitted := fitInto(area, texture.Width, texture.Height)
			canvas.AddImage(texture.Texture, fitted.Min, fitted.Max)
		} else if texture.Failed {
			drawPlaceholder(canvas, area)
		}

		if i == hovered {
			canvas.AddRectFilled(area.Min, area.Max, imageHoverOverlayColor, 4, giu.DrawFlagsNone)
			drawCaption(canvas, area, s.images[i])
			giu.SetMouseCursor(giu.MouseCursorHand)
		}
	}

	if hovered >= 0 && giu.IsMouseClicked(giu.MouseButtonLeft) {
		s.onOpen(hovered)
	}

	giu.Dummy(width, float32(gallery.LayoutHeight(cells))).Build()
}

func (s *GalleryGridWidget) layout(width int) ([]image.Rectangle, []*guiapi.TexturedImage) {
	textures := make([]*guiapi.TexturedImage, len(s.images))
	if s.viewMode == apitype.ViewMasonry {
		ratios := make([]float64, len(s.images))
		for i, record := range s.images {
			thumbnail := s.textures.GetThumbnailTexture(record)
			textures[i] = &thumbnail
			ratios[i] = float64(thumbnail.Ratio)
		}
		return gallery.MasonryLayout(ratios, width, minCellWidth, cellGap), textures
	}
	return gallery.GridLayout(len(s.images), width, minCellWidth, cellGap), textures
}

func fitInto(area image.Rectangle, width float32, height float32) image.Rectangle {
	size := apitype.PointOfScaledToFit(image.Pt(int(width), int(height)), apitype.SizeOf(area.Dx(), area.Dy()))
	offset := image.Pt((area.Dx()-size.Width())/2, (area.Dy()-size.Height())/2)
	start := area.Min.Add(offset)
	return image.Rectangle{Min: start, Max: start.Add(image.Pt(size.Width(), size.Height()))}
}

func drawPlaceholder(canvas *giu.Canvas, area image.Rectangle) {
	iconSize := area.Dx() / 4
	if area.Dy()/4 < iconSize {
		iconSize = area.Dy() / 4
	}
	center := image.Pt((area.Min.X+area.Max.X)/2, (area.Min.Y+area.Max.Y)/2)
	half := image.Pt(iconSize/2, iconSize/2)
	DrawIcon(canvas, apitype.IconImage, image.Rectangle{Min: center.Sub(half), Max: center.Add(half)}, placeholderColor)
}

func drawCaption(canvas *giu.Canvas, area image.Rectangle, record *apitype.ImageRecord) {
	const captionHeight = 48
	top := area.Max.Y - captionHeight
	if top < area.Min.Y {
		top = area.Min.Y
	}
	canvas.AddRectFilled(image.Pt(area.Min.X, top), area.Max, captionBackgroundColor, 0, giu.DrawFlagsNone)
	canvas.AddText(image.Pt(area.Min.X+captionPad, top+captionPad/2), captionCategoryColor, record.Category().String())
	canvas.AddText(image.Pt(area.Min.X+captionPad, top+captionHeight/2), captionColor, record.Title())
}

type EmptyStateWidget struct {
	message string
}

func EmptyState(message string) *EmptyStateWidget {
	return &EmptyStateWidget{message: message}
}

func (s *EmptyStateWidget) Build() {
	const iconSize = 64
	regionWidth, regionHeight := giu.GetAvailableRegion()
	start := giu.GetCursorScreenPos()
	center := start.Add(image.Pt(int(regionWidth/2), int(regionHeight/3)))

	canvas := giu.GetCanvas()
	iconArea := image.Rectangle{
		Min: center.Sub(image.Pt(iconSize/2, iconSize/2)),
		Max: center.Add(image.Pt(iconSize/2, iconSize/2)),
	}
	DrawIcon(canvas, apitype.IconCamera, iconArea, placeholderColor)
	textX := center.X - len(s.message)*7/2
	canvas.AddText(image.Pt(textX, iconArea.Max.Y+captionPad*2), placeholderColor, s.message)
	giu.Dummy(regionWidth, regionHeight).Build()
}
