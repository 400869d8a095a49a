package apitype

import (
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func applyZoom(value int, zoom float64) int {
	return int(float64(value) * zoom)
}

func SizeFromRectangle(rectangle image.Rectangle, zoom float64) Size {
	return Size{
		width:  applyZoom(rectangle.Dx(), zoom),
		height: applyZoom(rectangle.Dy(), zoom),
	}
}

func RectangleOfScaledToFit(rectangle image.Rectangle, target Size) Size {
	width, height := ScaleToFit(rectangle.Dx(), rectangle.Dy(), target.width, target.height)
	return SizeOf(width, height)
}

func PointOfScaledToFit(point image.Point, target Size) Size {
	width, height := ScaleToFit(point.X, point.Y, target.width, target.height)
	return SizeOf(width, height)
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return 0, 0
	}
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}
