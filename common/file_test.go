package common

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestDoesFileExist(t *testing.T) {
	a := assert.New(t)

	a.True(DoesFileExist("file_test.go"))
	a.True(DoesFileExist("."))
	a.False(DoesFileExist("foobarfile"))
}

func TestMakeDirectoriesIfNotExist(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	newDir := filepath.Join(dir, "test1", "test2")

	a.Nil(MakeDirectoriesIfNotExist(newDir))
	a.True(DoesFileExist(newDir))
	a.Nil(MakeDirectoriesIfNotExist(newDir))
}

func TestWriteFile(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := filepath.Join(t.TempDir(), "downloads")

	first, err := WriteFile(dir, "image.jpg", []byte("first"))
	r.Nil(err)
	a.Equal(filepath.Join(dir, "image.jpg"), first)

	second, err := WriteFile(dir, "image.jpg", []byte("second"))
	r.Nil(err)
	a.Equal(filepath.Join(dir, "image-2.jpg"), second)

	third, err := WriteFile(dir, "image.jpg", []byte("third"))
	r.Nil(err)
	a.Equal(filepath.Join(dir, "image-3.jpg"), third)

	content, err := os.ReadFile(second)
	r.Nil(err)
	a.Equal("second", string(content))
}
