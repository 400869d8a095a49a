package gallery

import (
	"vincit.fi/photo-gallery/api/apitype"
)

// Filter holds the selected category and derives the visible images from
// the catalog order.
type Filter struct {
	categories *apitype.CategorySet
	images     []*apitype.ImageRecord
	selected   apitype.Category
}

func NewFilter(categories *apitype.CategorySet, images []*apitype.ImageRecord) *Filter {
	return &Filter{
		categories: categories,
		images:     images,
		selected:   categories.All(),
	}
}

func (s *Filter) SelectCategory(category apitype.Category) {
	s.selected = category
}

func (s *Filter) SelectedCategory() apitype.Category {
	return s.selected
}

func (s *Filter) Categories() *apitype.CategorySet {
	return s.categories
}

// VisibleImages returns every image for the "all" category and otherwise
// the images of the selected category. The result is a new slice.
func (s *Filter) VisibleImages() []*apitype.ImageRecord {
	if s.categories.IsAll(s.selected) {
		images := make([]*apitype.ImageRecord, len(s.images))
		copy(images, s.images)
		return images
	}

	var images []*apitype.ImageRecord
	for _, image := range s.images {
		if image.Category() == s.selected {
			images = append(images, image)
		}
	}
	return images
}

func (s *Filter) VisibleCount() int {
	if s.categories.IsAll(s.selected) {
		return len(s.images)
	}
	count := 0
	for _, image := range s.images {
		if image.Category() == s.selected {
			count++
		}
	}
	return count
}
