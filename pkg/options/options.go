package options

import (
	"fmt"
	"path/filepath"
)

type Options struct {
	StatePath       string // collection JSON, relative to the working directory
	PlaceholderPath string // shown for files that are not images
	CachePath       string // sqlite thumbnail cache, empty disables caching
	Columns         int
	ThumbWidth      int
	ThumbHeight     int
	GradientTop     string
	GradientBottom  string
	HoverColor      string
	HoverWidth      float32
	Profiling       bool
	ProfilingServer string
}

func (opts Options) InitDefault() *Options {
	return &Options{
		StatePath:       "file_paths.json",
		PlaceholderPath: "image.png",
		CachePath:       "thumbcache.db",
		Columns:         5,
		ThumbWidth:      150,
		ThumbHeight:     225,
		GradientTop:     "#008000",
		GradientBottom:  "#000000",
		HoverColor:      "#0000FF7F",
		HoverWidth:      10,
		Profiling:       false,
		ProfilingServer: "http://localhost:4040",
	}
}

// Validate checks the values a hand edited Options could break.
func (opts *Options) Validate() error {
	if opts.StatePath == "" {
		return fmt.Errorf("state path is empty")
	}
	if filepath.Ext(opts.StatePath) != ".json" {
		return fmt.Errorf("state path %q is not a .json file", opts.StatePath)
	}
	if opts.Columns < 1 {
		return fmt.Errorf("columns must be positive, got %d", opts.Columns)
	}
	if opts.ThumbWidth < 1 || opts.ThumbHeight < 1 {
		return fmt.Errorf("invalid thumbnail size %dx%d", opts.ThumbWidth, opts.ThumbHeight)
	}
	return nil
}
