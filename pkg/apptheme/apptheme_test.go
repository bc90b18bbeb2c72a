package apptheme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestColors(t *testing.T) {
	test.NewApp()
	th := ShelfTheme{}
	assert.Equal(t, color.NRGBA{A: 0xff}, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	// unknown names fall through to the dark default
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameSeparator, theme.VariantDark),
		th.Color(theme.ColorNameSeparator, theme.VariantLight))
}

func TestSizes(t *testing.T) {
	test.NewApp()
	th := ShelfTheme{}
	assert.Equal(t, float32(4), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameInlineIcon), th.Size(theme.SizeNameInlineIcon))
}
