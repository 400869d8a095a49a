package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

//go:embed catalog.yaml
var builtInCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type document struct {
	All        string          `yaml:"all" validate:"required"`
	Categories []string        `yaml:"categories" validate:"required,unique,dive,required"`
	Images     []imageDocument `yaml:"images" validate:"unique=Id,dive"`
}

type imageDocument struct {
	Id          int64  `yaml:"id" validate:"gt=0"`
	Url         string `yaml:"url" validate:"required"`
	Thumbnail   string `yaml:"thumbnail"`
	Title       string `yaml:"title" validate:"required"`
	Category    string `yaml:"category" validate:"required"`
	Description string `yaml:"description"`
}

// Catalog is the fixed set of images and categories of a session.
type Catalog struct {
	images     []*apitype.ImageRecord
	categories *apitype.CategorySet
}

func NewCatalog(categories *apitype.CategorySet, images []*apitype.ImageRecord) *Catalog {
	stored := make([]*apitype.ImageRecord, len(images))
	copy(stored, images)
	return &Catalog{
		images:     stored,
		categories: categories,
	}
}

// BuiltIn returns the catalog compiled into the binary.
func BuiltIn() (*Catalog, error) {
	return Parse(bytes.NewReader(builtInCatalog))
}

func LoadFile(path string) (*Catalog, error) {
	logger.Debug.Printf("Loading catalog from '%s'", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func Parse(reader io.Reader) (*Catalog, error) {
	var doc document
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	if err := validator.New().Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}

	categories := make([]apitype.Category, 0, len(doc.Categories))
	for _, name := range doc.Categories {
		if name == doc.All {
			return nil, fmt.Errorf("%w: category '%s' is reserved for all images", ErrInvalidCatalog, name)
		}
		categories = append(categories, apitype.Category(name))
	}
	categorySet := apitype.NewCategorySet(apitype.Category(doc.All), categories)

	images := make([]*apitype.ImageRecord, 0, len(doc.Images))
	for _, img := range doc.Images {
		category := apitype.Category(img.Category)
		if categorySet.IsAll(category) || !categorySet.Contains(category) {
			return nil, fmt.Errorf("%w: image %d has unknown category '%s'", ErrInvalidCatalog, img.Id, img.Category)
		}
		images = append(images, apitype.NewImageRecord(
			apitype.ImageId(img.Id), img.Url, img.Thumbnail, img.Title, category, img.Description))
	}

	logger.Debug.Printf("Catalog loaded with %d images in %d categories", len(images), len(categories))
	return NewCatalog(categorySet, images), nil
}

// Images returns the catalog in its original order.
func (s *Catalog) Images() []*apitype.ImageRecord {
	images := make([]*apitype.ImageRecord, len(s.images))
	copy(images, s.images)
	return images
}

func (s *Catalog) Categories() *apitype.CategorySet {
	return s.categories
}

func (s *Catalog) Len() int {
	return len(s.images)
}
