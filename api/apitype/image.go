package apitype

import "fmt"

type ImageId int64

const NoImage = ImageId(-1)

// ImageRecord is one catalog entry. Records are created once when the
// catalog is loaded and never mutated after that.
type ImageRecord struct {
	id          ImageId
	url         string
	thumbnail   string
	title       string
	category    Category
	description string
}

func NewImageRecord(id ImageId, url string, thumbnail string, title string, category Category, description string) *ImageRecord {
	return &ImageRecord{
		id:          id,
		url:         url,
		thumbnail:   thumbnail,
		title:       title,
		category:    category,
		description: description,
	}
}

func (s *ImageRecord) IsValid() bool {
	return s != nil && s.id != NoImage && s.url != ""
}

func (s *ImageRecord) Id() ImageId {
	if s != nil {
		return s.id
	} else {
		return NoImage
	}
}

func (s *ImageRecord) Url() string {
	if s != nil {
		return s.url
	} else {
		return ""
	}
}

// Thumbnail is the address used in the grid. Falls back to the full
// resolution address when the record has no separate thumbnail.
func (s *ImageRecord) Thumbnail() string {
	if s == nil {
		return ""
	} else if s.thumbnail == "" {
		return s.url
	} else {
		return s.thumbnail
	}
}

func (s *ImageRecord) Title() string {
	if s != nil {
		return s.title
	} else {
		return ""
	}
}

func (s *ImageRecord) Category() Category {
	if s != nil {
		return s.category
	} else {
		return ""
	}
}

func (s *ImageRecord) Description() string {
	if s != nil {
		return s.description
	} else {
		return ""
	}
}

func (s *ImageRecord) String() string {
	if s != nil {
		if s.IsValid() {
			return fmt.Sprintf("ImageRecord{%d:%s}", s.id, s.title)
		} else {
			return "ImageRecord<invalid>"
		}
	} else {
		return "ImageRecord<nil>"
	}
}
