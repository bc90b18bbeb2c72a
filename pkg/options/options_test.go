package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitDefault(t *testing.T) {
	opts := Options{}.InitDefault()

	assert.Equal(t, "file_paths.json", opts.StatePath)
	assert.Equal(t, "image.png", opts.PlaceholderPath)
	assert.Equal(t, 5, opts.Columns)
	assert.Equal(t, 150, opts.ThumbWidth)
	assert.Equal(t, 225, opts.ThumbHeight)
	assert.False(t, opts.Profiling, "profiling should be off by default")
	assert.NoError(t, opts.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(o *Options){
		"empty state path": func(o *Options) { o.StatePath = "" },
		"not json":         func(o *Options) { o.StatePath = "paths.txt" },
		"zero columns":     func(o *Options) { o.Columns = 0 },
		"zero width":       func(o *Options) { o.ThumbWidth = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := Options{}.InitDefault()
			mutate(opts)
			assert.Error(t, opts.Validate())
		})
	}
}
