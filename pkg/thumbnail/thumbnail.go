// Package thumbnail turns a collection entry into the fixed size image shown
// in the grid: pick a source, center-crop it to 2:3 and scale it to fit.
package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"thumbshelf/pkg/fileutils"
	"thumbshelf/pkg/imageconv"
	"thumbshelf/pkg/thumbcache"
)

var blankColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

// Cache stores rendered thumbnails as webp bytes. Get returns nil data on a miss.
type Cache interface {
	Get(key thumbcache.Key) ([]byte, error)
	Put(key thumbcache.Key, data []byte) error
}

type Renderer struct {
	Width       int
	Height      int
	Placeholder string

	cache  Cache
	logger zerolog.Logger
}

// NewRenderer returns a renderer for width x height thumbnails. cache may be nil.
func NewRenderer(width, height int, placeholder string, cache Cache, logger zerolog.Logger) *Renderer {
	return &Renderer{
		Width:       width,
		Height:      height,
		Placeholder: placeholder,
		cache:       cache,
		logger:      logger,
	}
}

// SourceFor picks the file whose pixels represent path: the override when one
// is set, path itself when it is an image file, otherwise the placeholder.
func SourceFor(path, override, placeholder string) string {
	if override != "" {
		return override
	}
	if ok, err := fileutils.IsFile(path); err == nil && ok && fileutils.IsImageFileMap(path) {
		return path
	}
	return placeholder
}

// CenterCrop trims the oversized dimension symmetrically so that
// width/height is 2/3. The image is not scaled.
func CenterCrop(img image.Image) image.Image {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	newWidth := math.Min(width, height*2/3)
	newHeight := math.Min(height, width*3/2)
	x := (width - newWidth) / 2
	y := (height - newHeight) / 2

	rect := image.Rect(int(x), int(y), int(x)+int(newWidth), int(y)+int(newHeight)).Add(b.Min)
	return imaging.Crop(img, rect)
}

// FitSize returns the largest size with the aspect ratio of w x h that fits
// into maxW x maxH.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	return nw, nh
}

// Fit scales img up or down to fit into maxW x maxH keeping its aspect ratio.
func Fit(img image.Image, maxW, maxH int) (image.Image, error) {
	b := img.Bounds()
	nw, nh := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if nw == 0 {
		return nil, fmt.Errorf("cannot scale empty image")
	}
	return imaging.Resize(img, nw, nh, imaging.Lanczos), nil
}

// Render decodes src, crops and scales it. Results are cached when a cache is set.
func (r *Renderer) Render(src string) (image.Image, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", src, err)
	}
	key := thumbcache.Key{
		Path:    src,
		ModTime: info.ModTime().UnixNano(),
		Size:    info.Size(),
		Width:   r.Width,
		Height:  r.Height,
	}

	if r.cache != nil {
		if img := r.cached(key); img != nil {
			return img, nil
		}
	}

	img, err := imageconv.Decode(src)
	if err != nil {
		return nil, err
	}
	thumb, err := Fit(CenterCrop(img), r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("error scaling %s: %w", src, err)
	}

	if r.cache != nil {
		r.store(key, thumb)
	}
	return thumb, nil
}

func (r *Renderer) cached(key thumbcache.Key) image.Image {
	data, err := r.cache.Get(key)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", key.Path).Msg("thumbnail cache lookup failed")
		return nil
	}
	if data == nil {
		return nil
	}
	img, err := imageconv.DecodeWebP(data)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", key.Path).Msg("corrupt cached thumbnail")
		return nil
	}
	return img
}

func (r *Renderer) store(key thumbcache.Key, img image.Image) {
	data, err := imageconv.EncodeWebP(img)
	if err == nil {
		err = r.cache.Put(key, data)
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("path", key.Path).Msg("thumbnail cache store failed")
	}
}

// Thumbnail returns the image displayed for path. It never fails: unreadable
// sources fall back to the placeholder and a broken placeholder to a flat fill.
func (r *Renderer) Thumbnail(path, override string) image.Image {
	src := SourceFor(path, override, r.Placeholder)
	img, err := r.Render(src)
	if err == nil {
		return img
	}
	r.logger.Debug().Err(err).Str("path", path).Str("source", src).Msg("falling back to placeholder")

	if src != r.Placeholder {
		if img, err = r.Render(r.Placeholder); err == nil {
			return img
		}
		r.logger.Debug().Err(err).Str("placeholder", r.Placeholder).Msg("placeholder unusable")
	}
	return r.Blank()
}

// Blank is the flat image used when not even the placeholder can be drawn.
func (r *Renderer) Blank() image.Image {
	return imaging.New(r.Width, r.Height, blankColor)
}
