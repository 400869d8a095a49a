package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/photo-gallery/common/logger"
)

const directoryMode = 0755

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func MakeDirectoriesIfNotExist(dir string) error {
	if DoesFileExist(dir) {
		return nil
	}
	logger.Debug.Printf("Creating directory '%s'", dir)
	if err := os.MkdirAll(dir, directoryMode); err != nil {
		return fmt.Errorf("create directory '%s': %w", dir, err)
	}
	return nil
}

// UniqueFilePath returns dstPath/dstFile or, when that is taken, the first
// free name with a running number before the extension.
func UniqueFilePath(dstPath string, dstFile string) string {
	candidate := filepath.Join(dstPath, dstFile)
	extension := filepath.Ext(dstFile)
	base := strings.TrimSuffix(dstFile, extension)
	for i := 2; DoesFileExist(candidate); i++ {
		candidate = filepath.Join(dstPath, fmt.Sprintf("%s-%d%s", base, i, extension))
	}
	return candidate
}

// WriteFile writes data into a new file in dstPath, creating the directory
// if needed, and returns the path that was written.
func WriteFile(dstPath string, dstFile string, data []byte) (string, error) {
	if err := MakeDirectoriesIfNotExist(dstPath); err != nil {
		return "", err
	}
	dstFilePath := UniqueFilePath(dstPath, dstFile)
	logger.Debug.Printf("Writing '%s'", dstFilePath)
	if err := os.WriteFile(dstFilePath, data, 0644); err != nil {
		return "", fmt.Errorf("write '%s': %w", dstFilePath, err)
	}
	return dstFilePath, nil
}
