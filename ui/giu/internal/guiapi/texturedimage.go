package guiapi

import (
	"github.com/AllenDang/giu"
	"vincit.fi/photo-gallery/api/apitype"
)

// TexturedImage is a GPU texture of a catalog image. Failed is set when
// the image could not be loaded and a placeholder should be drawn instead.
type TexturedImage struct {
	Texture   *giu.Texture
	Image     *apitype.ImageRecord
	Width     float32
	Height    float32
	Ratio     float32
	IsLoading bool
	Failed    bool
}

func NewTexturedImage(image *apitype.ImageRecord, texture *giu.Texture, width int, height int) *TexturedImage {
	ratio := float32(0)
	if height > 0 {
		ratio = float32(width) / float32(height)
	}
	return &TexturedImage{
		Texture:   texture,
		Image:     image,
		Width:     float32(width),
		Height:    float32(height),
		Ratio:     ratio,
		IsLoading: false,
	}
}

func NewEmptyTexturedImage(image *apitype.ImageRecord) *TexturedImage {
	return &TexturedImage{
		Texture:   nil,
		Image:     image,
		Width:     0,
		Height:    0,
		Ratio:     0,
		IsLoading: true,
	}
}

func NewFailedTexturedImage(image *apitype.ImageRecord) *TexturedImage {
	return &TexturedImage{
		Image:     image,
		IsLoading: false,
		Failed:    true,
	}
}

func (s *TexturedImage) IsSame(other *TexturedImage) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Image.Id() == other.Image.Id()
}

func (s *TexturedImage) IsReady() bool {
	return s != nil && s.Texture != nil && !s.Failed
}

func (s *TexturedImage) SetLoaded(other *TexturedImage) {
	s.Texture = other.Texture
	s.Image = other.Image
	s.Ratio = other.Ratio
	s.Width = other.Width
	s.Height = other.Height
	s.IsLoading = false
	s.Failed = other.Failed
}
