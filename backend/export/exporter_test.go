package export

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"vincit.fi/photo-gallery/api"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/common/event"
)

type StubFetcher struct {
	data map[string][]byte

	api.ImageFetcher
}

func (s *StubFetcher) Fetch(address string) ([]byte, error) {
	if data, ok := s.data[address]; ok {
		return data, nil
	}
	return nil, errors.New("not found")
}

type MockSender struct {
	topics   []api.Topic
	commands []apitype.Command

	api.Sender
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.topics = append(s.topics, topic)
	s.commands = append(s.commands, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}

func pngBytes(t *testing.T) []byte {
	buffer := bytes.Buffer{}
	require.Nil(t, png.Encode(&buffer, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	return buffer.Bytes()
}

func TestSlug(t *testing.T) {
	a := assert.New(t)

	a.Equal("project-1", Slug("Project 1"))
	a.Equal("a-b-c", Slug("  A -- b__C!  "))
	a.Equal("проект-2", Slug("Проект 2"))
	a.Equal("", Slug("!!!"))
}

func TestFileName(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		url      string
		title    string
		detected string
		expected string
	}{
		{"https://example.com/images/house.JPEG", "Old House", ".png", "7-old-house.jpeg"},
		{"https://example.com/images/house.jpg?w=200", "House", "", "7-house.jpg"},
		{"https://example.com/render/house", "House", ".png", "7-house.png"},
		{"https://example.com/render/house", "House", "", "7-house.jpg"},
		{"https://example.com/file.tar.gz", "", ".gif", "7.gif"},
	}
	for _, test := range tests {
		record := apitype.NewImageRecord(7, test.url, "", test.title, "A", "")
		a.Equal(test.expected, FileName(record, test.detected), test.url)
	}
}

func TestExporter_Export(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	data := pngBytes(t)
	fetcher := &StubFetcher{data: map[string][]byte{
		"https://example.com/render/1": data,
		"https://example.com/text":     []byte("hello, world"),
	}}
	dir := filepath.Join(t.TempDir(), "downloads")
	exporter := NewExporter(fetcher, event.InitDevNullBus())

	record := apitype.NewImageRecord(1, "https://example.com/render/1", "", "Project 1", "A", "")
	exported, err := exporter.Export(record, dir)
	r.Nil(err)
	a.Equal(filepath.Join(dir, "1-project-1.png"), exported)
	written, err := os.ReadFile(exported)
	r.Nil(err)
	a.Equal(data, written)

	again, err := exporter.Export(record, dir)
	r.Nil(err)
	a.Equal(filepath.Join(dir, "1-project-1-2.png"), again)

	_, err = exporter.Export(apitype.NewImageRecord(2, "https://example.com/text", "", "Text", "A", ""), dir)
	a.ErrorIs(err, errNotAnImage)

	_, err = exporter.Export(apitype.NewImageRecord(3, "https://example.com/missing", "", "Missing", "A", ""), dir)
	a.NotNil(err)

	_, err = exporter.Export(nil, dir)
	a.ErrorIs(err, errNoImage)

	_, err = exporter.Export(record, "")
	a.ErrorIs(err, errNoDirectory)
}

func TestExporter_ExportImage(t *testing.T) {
	a := assert.New(t)

	fetcher := &StubFetcher{data: map[string][]byte{
		"https://example.com/1.png": pngBytes(t),
	}}
	sender := &MockSender{}
	exporter := NewExporter(fetcher, sender)
	dir := t.TempDir()

	record := apitype.NewImageRecord(1, "https://example.com/1.png", "", "One", "A", "")
	exporter.ExportImage(&api.ExportCommand{Image: record, Directory: dir})
	exporter.ExportImage(&api.ExportCommand{Image: record, Directory: ""})

	a.Equal([]api.Topic{api.ImageExported, api.ShowError}, sender.topics)
	a.Equal(&api.ExportedCommand{Image: record, Path: filepath.Join(dir, "1-one.png")}, sender.commands[0])
}
