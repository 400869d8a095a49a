package apitype

import (
	"bytes"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"image/color"
)

type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
}

const exifUnchangedOrientation = 1

var unchangedExifData = ExifData{orientation: exifUnchangedOrientation}

func NewExifData(orientation int) *ExifData {
	rotation, flipped := ExifOrientationToAngleAndFlip(orientation)
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    rotation,
		flipped:     flipped,
	}
}

// LoadExifData reads the orientation from encoded image bytes. Images
// without EXIF data are returned as unrotated together with the error.
func LoadExifData(data []byte) (*ExifData, error) {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return &unchangedExifData, err
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return &unchangedExifData, err
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return &unchangedExifData, err
	}
	return NewExifData(orientation), nil
}

func (s *ExifData) Orientation() uint8 {
	return s.orientation
}

func (s *ExifData) Rotation() float64 {
	return s.rotation
}

func (s *ExifData) IsFlipped() bool {
	return s.flipped
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

// ExifRotateImage always returns an *image.NRGBA, also when no rotation
// is needed.
func ExifRotateImage(loadedImage image.Image, exifData *ExifData) image.Image {
	if exifData == nil {
		exifData = &unchangedExifData
	}
	rotated := imaging.Rotate(loadedImage, exifData.rotation, color.Black)
	if exifData.flipped {
		return imaging.FlipH(rotated)
	} else {
		return rotated
	}
}
