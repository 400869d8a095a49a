package gallery

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"vincit.fi/photo-gallery/api/apitype"
)

const (
	all       = apitype.Category("All")
	categoryA = apitype.Category("A")
	categoryB = apitype.Category("B")
	categoryC = apitype.Category("C")
)

func testImages() []*apitype.ImageRecord {
	return []*apitype.ImageRecord{
		apitype.NewImageRecord(1, "1.jpg", "", "One", categoryA, ""),
		apitype.NewImageRecord(2, "2.jpg", "", "Two", categoryA, ""),
		apitype.NewImageRecord(3, "3.jpg", "", "Three", categoryB, ""),
	}
}

func testCategories() *apitype.CategorySet {
	return apitype.NewCategorySet(all, []apitype.Category{categoryA, categoryB, categoryC})
}

func ids(images []*apitype.ImageRecord) []apitype.ImageId {
	result := make([]apitype.ImageId, 0, len(images))
	for _, image := range images {
		result = append(result, image.Id())
	}
	return result
}

func TestFilter_VisibleImages(t *testing.T) {
	a := assert.New(t)

	filter := NewFilter(testCategories(), testImages())
	a.Equal(all, filter.SelectedCategory())
	a.Equal([]apitype.ImageId{1, 2, 3}, ids(filter.VisibleImages()))

	filter.SelectCategory(categoryA)
	a.Equal([]apitype.ImageId{1, 2}, ids(filter.VisibleImages()))
	a.Equal(2, filter.VisibleCount())

	filter.SelectCategory(categoryB)
	a.Equal([]apitype.ImageId{3}, ids(filter.VisibleImages()))
	a.Equal(1, filter.VisibleCount())

	filter.SelectCategory(categoryC)
	a.Empty(filter.VisibleImages())
	a.Equal(0, filter.VisibleCount())

	filter.SelectCategory(all)
	a.Equal([]apitype.ImageId{1, 2, 3}, ids(filter.VisibleImages()))
	a.Equal(3, filter.VisibleCount())
}

func TestFilter_VisibleImagesIsACopy(t *testing.T) {
	a := assert.New(t)

	filter := NewFilter(testCategories(), testImages())
	visible := filter.VisibleImages()
	visible[0] = nil

	a.NotNil(filter.VisibleImages()[0])
}

func TestFilter_ResultsAreSubsetInOrder(t *testing.T) {
	a := assert.New(t)

	filter := NewFilter(testCategories(), testImages())
	catalog := filter.VisibleImages()
	for _, category := range testCategories().Categories() {
		filter.SelectCategory(category)
		visible := filter.VisibleImages()

		position := 0
		for _, image := range visible {
			for position < len(catalog) && catalog[position] != image {
				position++
			}
			a.Less(position, len(catalog), "%s: %s not in catalog order", category, image)
			if !testCategories().IsAll(category) {
				a.Equal(category, image.Category())
			}
		}
	}
}
