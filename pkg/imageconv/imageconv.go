package imageconv

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	chaiWebp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/svg"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Decode opens the image at path and decodes it based on its extension.
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer file.Close()

	var img image.Image

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	case ".png":
		img, err = png.Decode(file)
	case ".gif":
		// first frame only
		img, err = gif.Decode(file)
	case ".bmp":
		img, err = bmp.Decode(file)
	case ".tiff", ".tif":
		img, err = tiff.Decode(file)
	case ".webp":
		img, err = webp.Decode(file)
	case ".svg":
		img, err = svg.Decode(file)
	case ".avif":
		img, err = avif.Decode(file)
	case ".qoi":
		img, err = qoi.Decode(file)
	default:
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return img, nil
}

// EncodeWebP encodes img as lossless webp, the format of stored thumbnails.
func EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := chaiWebp.Encode(&buf, img, &chaiWebp.Options{Lossless: true}); err != nil {
		return nil, fmt.Errorf("error encoding webp: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeWebP(data []byte) (image.Image, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding webp: %w", err)
	}
	return img, nil
}
