package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// extensions imageconv knows how to decode
	imageMap = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
		".bmp":  true,
		".tif":  true,
		".tiff": true,
		".webp": true,
		".avif": true,
		".svg":  true,
		".qoi":  true,
		".ico":  false,
		".heic": false,
		".raw":  false,
	}
)

func IsFile(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return !fileInfo.IsDir(), nil
}

func IsImageFileMap(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return imageMap[ext]
}

// ImageExtensions lists the supported extensions sorted, for file dialog filters.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageMap))
	for ext, ok := range imageMap {
		if ok {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// GetDirFiles returns the full paths of the regular files in dir, in name order.
func GetDirFiles(dir string) ([]string, error) {
	dirFiles, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}

	var files []string
	for _, v := range dirFiles {
		if v.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, v.Name()))
	}

	return files, nil
}
