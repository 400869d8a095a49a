package export

import (
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"net/url"
	"path"
	"strings"
	"unicode"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common"
	"vincit.fi/photo-gallery/common/logger"
)

const defaultExtension = ".jpg"

var (
	errNoImage     = errors.New("no image to export")
	errNoDirectory = errors.New("no target directory")
	errNotAnImage  = errors.New("not an image")

	knownExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
)

// Exporter saves the original bytes of an image into a local directory.
type Exporter struct {
	fetcher api.ImageFetcher
	sender  api.Sender
}

func NewExporter(fetcher api.ImageFetcher, sender api.Sender) *Exporter {
	return &Exporter{
		fetcher: fetcher,
		sender:  sender,
	}
}

// ExportImage handles export requests from the broker and reports the
// result back on it.
func (s *Exporter) ExportImage(command *api.ExportCommand) {
	if exportedPath, err := s.Export(command.Image, command.Directory); err != nil {
		s.sender.SendError("Could not download image", err)
	} else {
		s.sender.SendCommandToTopic(api.ImageExported, &api.ExportedCommand{
			Image: command.Image,
			Path:  exportedPath,
		})
	}
}

func (s *Exporter) Export(record *apitype.ImageRecord, directory string) (string, error) {
	if !record.IsValid() {
		return "", errNoImage
	}
	if directory == "" {
		return "", errNoDirectory
	}

	logger.Debug.Printf("Export %s to '%s'", record, directory)
	data, err := s.fetcher.Fetch(record.Url())
	if err != nil {
		return "", fmt.Errorf("fetch '%s': %w", record.Url(), err)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", fmt.Errorf("%w: '%s' is %s", errNotAnImage, record.Url(), detected.String())
	}

	fileName := FileName(record, detected.Extension())
	exportedPath, err := common.WriteFile(directory, fileName, data)
	if err != nil {
		return "", err
	}
	logger.Info.Printf("Exported %s to '%s'", record, exportedPath)
	return exportedPath, nil
}

// FileName builds "<id>-<title><ext>". The extension of the address wins
// over the detected one.
func FileName(record *apitype.ImageRecord, detectedExtension string) string {
	extension := addressExtension(record.Url())
	if extension == "" {
		extension = detectedExtension
	}
	if extension == "" {
		extension = defaultExtension
	}

	name := Slug(record.Title())
	if name == "" {
		return fmt.Sprintf("%d%s", record.Id(), extension)
	}
	return fmt.Sprintf("%d-%s%s", record.Id(), name, extension)
}

func addressExtension(address string) string {
	p := address
	if parsed, err := url.Parse(address); err == nil {
		p = parsed.Path
	}
	extension := strings.ToLower(path.Ext(p))
	if knownExtensions[extension] {
		return extension
	}
	return ""
}

// Slug lower-cases the title and joins its words with dashes.
func Slug(title string) string {
	var builder strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && builder.Len() > 0 {
				builder.WriteRune('-')
			}
			builder.WriteRune(r)
			pendingDash = false
		} else {
			pendingDash = true
		}
	}
	return builder.String()
}
