package imageloader

import (
	"bytes"
	"github.com/disintegration/imaging"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/logger"
)

var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

func isJpeg(data []byte) bool {
	return bytes.HasPrefix(data, jpegMagic)
}

func decodeGeneric(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func decodeAndFit(data []byte, size apitype.Size) (image.Image, error) {
	img, err := decodeGeneric(data)
	if err != nil {
		return nil, err
	}
	return imaging.Fit(img, size.Width(), size.Height(), imaging.Linear), nil
}

// ConvertToRgba returns the image as *image.RGBA which is what the GUI
// textures are created from.
func ConvertToRgba(i image.Image) *image.RGBA {
	switch img := i.(type) {
	case *image.RGBA:
		return img
	case *image.NRGBA:
		return convertNrgbaToRgba(img)
	default:
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		return rgba
	}
}

func convertNrgbaToRgba(n *image.NRGBA) *image.RGBA {
	start := time.Now()

	rgba := image.NewRGBA(n.Rect)
	for y := n.Rect.Min.Y; y < n.Rect.Max.Y; y++ {
		for x := n.Rect.Min.X; x < n.Rect.Max.X; x++ {
			nrgbaPixOffset := n.PixOffset(x, y)
			nrgbaStride := n.Pix[nrgbaPixOffset : nrgbaPixOffset+4 : nrgbaPixOffset+4]

			rgbaPixOffset := rgba.PixOffset(x, y)
			rgbaStride := rgba.Pix[rgbaPixOffset : rgbaPixOffset+4 : rgbaPixOffset+4]

			alpha := uint32(nrgbaStride[3])
			if alpha == 0xFF {
				// JPEG images are always opaque and take this path
				rgbaStride[0] = nrgbaStride[0]
				rgbaStride[1] = nrgbaStride[1]
				rgbaStride[2] = nrgbaStride[2]
			} else {
				rgbaStride[0] = uint8(uint32(nrgbaStride[0]) * alpha / 0xFF)
				rgbaStride[1] = uint8(uint32(nrgbaStride[1]) * alpha / 0xFF)
				rgbaStride[2] = uint8(uint32(nrgbaStride[2]) * alpha / 0xFF)
			}
			rgbaStride[3] = nrgbaStride[3]
		}
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting from NRGBA to RGBA: %s", time.Since(start))
	}
	return rgba
}
