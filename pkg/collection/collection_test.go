package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "file_paths.json")
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	c, err := Load(statePath(t))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.CustomImages())
}

func TestAddThenReloadKeepsOrder(t *testing.T) {
	path := statePath(t)
	c := New(path)
	paths := []string{"/z/last.txt", "/a/first.png", "/m/middle.pdf", "/a/first.png"}
	require.NoError(t, c.Add(paths...))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, paths, reloaded.Paths())
}

func TestDeleteRemovesPathAndOverride(t *testing.T) {
	path := statePath(t)
	c := New(path)
	require.NoError(t, c.Add("/a.txt", "/b.txt"))
	require.NoError(t, c.SetCustomImage("/a.txt", "/cover.png"))

	require.NoError(t, c.Delete("/a.txt"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/b.txt"}, reloaded.Paths())
	_, ok := reloaded.CustomImage("/a.txt")
	assert.False(t, ok, "override survived delete")
}

func TestDeleteRemovesFirstDuplicateOnly(t *testing.T) {
	c := New(statePath(t))
	require.NoError(t, c.Add("/a", "/b", "/a"))

	require.NoError(t, c.Delete("/a"))
	assert.Equal(t, []string{"/b", "/a"}, c.Paths())
}

func TestDeleteUnknownPathStillPersists(t *testing.T) {
	path := statePath(t)
	c := New(path)
	require.NoError(t, c.Delete("/never-added"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"file_paths": [], "custom_images": {}}`, string(data))
}

func TestLoadLegacyArray(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`["/one", "/two"]`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/one", "/two"}, c.Paths())
	assert.Empty(t, c.CustomImages())

	// writers always emit the current shape
	require.NoError(t, c.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"file_paths": ["/one", "/two"], "custom_images": {}}`, string(data))
}

func TestLoadCurrentShape(t *testing.T) {
	path := statePath(t)
	doc := `{"file_paths": ["/doc.pdf"], "custom_images": {"/doc.pdf": "/cover.jpg", "/stale": "/x.png"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/doc.pdf"}, c.Paths())
	img, ok := c.CustomImage("/doc.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/cover.jpg", img)
	// overrides for paths never added are kept as-is
	_, ok = c.CustomImage("/stale")
	assert.True(t, ok)
}

func TestLoadNullOverrides(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"file_paths": ["/a"], "custom_images": null}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.SetCustomImage("/a", "/b.png"), "nil map not normalised")
}

func TestLoadMalformed(t *testing.T) {
	for name, doc := range map[string]string{
		"truncated":  `{"file_paths": [`,
		"empty":      ``,
		"number":     `42`,
		"string":     `"a"`,
		"bad type":   `{"file_paths": "nope"}`,
		"typo key":   `{"filepaths": ["/precious/a.pdf"], "custom_images": {}}`,
		"null paths": `{"file_paths": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := statePath(t)
			require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	path := statePath(t)
	c := New(path)
	require.NoError(t, c.Add("/b", "/a", "/c"))
	require.NoError(t, c.SetCustomImage("/a", "/a.png"))
	require.NoError(t, c.SetCustomImage("/c", "/c.png"))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Save())
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, c.Paths(), reloaded.Paths())
	assert.Equal(t, c.CustomImages(), reloaded.CustomImages())
	assert.JSONEq(t, string(first), string(second))
}

func TestSaveErrorIsReturned(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing-dir", "file_paths.json"))
	err := c.Add("/a")
	assert.Error(t, err)
	// the mutation stays in memory
	assert.Equal(t, []string{"/a"}, c.Paths())
}

func TestPathsReturnsCopy(t *testing.T) {
	c := New(statePath(t))
	require.NoError(t, c.Add("/a"))
	p := c.Paths()
	p[0] = "/changed"
	assert.Equal(t, []string{"/a"}, c.Paths())
}

func TestMissingPathsKeyLeavesFileUntouched(t *testing.T) {
	path := statePath(t)
	doc := `{"filepaths": ["/precious/a.pdf", "/precious/b.pdf"], "custom_images": {}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)
	require.ErrorContains(t, err, "file_paths")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestMissingOverridesKeyIsEmpty(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"file_paths": ["/a"]}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, c.Paths())
	assert.Empty(t, c.CustomImages())
}
