// Package collection keeps the user's ordered list of file references and
// their thumbnail overrides, mirrored to a JSON file after every change.
package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
)

// state is the on-disk shape written by Save.
type state struct {
	FilePaths    []string          `json:"file_paths"`
	CustomImages map[string]string `json:"custom_images"`
}

type Collection struct {
	path         string
	filePaths    []string
	customImages map[string]string
}

// New returns an empty collection persisted to path.
func New(path string) *Collection {
	return &Collection{
		path:         path,
		filePaths:    []string{},
		customImages: map[string]string{},
	}
}

// Load reads the collection stored at path. A missing file is an empty
// collection; a file that exists but cannot be decoded is an error.
func Load(path string) (*Collection, error) {
	c := New(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	st, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if st.FilePaths != nil {
		c.filePaths = st.FilePaths
	}
	if st.CustomImages != nil {
		c.customImages = st.CustomImages
	}
	return c, nil
}

// decode accepts the legacy shape, a bare array of paths, and the current object shape.
func decode(data []byte) (state, error) {
	var st state
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return st, fmt.Errorf("empty document")
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &st.FilePaths); err != nil {
			return st, err
		}
	case '{':
		// file_paths is required so a mistyped key never loads as empty and gets overwritten
		var doc struct {
			FilePaths    *[]string         `json:"file_paths"`
			CustomImages map[string]string `json:"custom_images"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return st, err
		}
		if doc.FilePaths == nil {
			return st, fmt.Errorf("missing file_paths")
		}
		st.FilePaths = *doc.FilePaths
		st.CustomImages = doc.CustomImages
	default:
		return st, fmt.Errorf("expected a JSON array or object")
	}
	return st, nil
}

// Save writes the whole collection in the current shape.
func (c *Collection) Save() error {
	data, err := json.Marshal(state{FilePaths: c.filePaths, CustomImages: c.customImages})
	if err != nil {
		return fmt.Errorf("error marshaling collection: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", c.path, err)
	}
	return nil
}

// Add appends paths in the given order and persists. Duplicates are kept.
func (c *Collection) Add(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	c.filePaths = append(c.filePaths, paths...)
	return c.Save()
}

// Delete removes the first occurrence of path and its override, then persists.
func (c *Collection) Delete(path string) error {
	if i := slices.Index(c.filePaths, path); i >= 0 {
		c.filePaths = slices.Delete(c.filePaths, i, i+1)
	}
	delete(c.customImages, path)
	return c.Save()
}

// SetCustomImage makes image the displayed thumbnail for path and persists.
func (c *Collection) SetCustomImage(path, image string) error {
	c.customImages[path] = image
	return c.Save()
}

// Paths returns a copy of the entries in insertion order.
func (c *Collection) Paths() []string {
	return slices.Clone(c.filePaths)
}

func (c *Collection) CustomImage(path string) (string, bool) {
	img, ok := c.customImages[path]
	return img, ok
}

// CustomImages returns a copy of the override map.
func (c *Collection) CustomImages() map[string]string {
	return maps.Clone(c.customImages)
}

func (c *Collection) Len() int {
	return len(c.filePaths)
}
