package caster

import "vincit.fi/photo-gallery/api/apitype"

// CurrentImage is served as JSON next to the cast image so that a receiver
// page can show the same caption as the lightbox footer.
type CurrentImage struct {
	Id                apitype.ImageId  `json:"imageId"`
	CurrentImageIndex int              `json:"currentImageIndex"`
	TotalImages       int              `json:"totalImages"`
	Title             string           `json:"title"`
	Category          apitype.Category `json:"category"`
	Description       string           `json:"description"`
}
