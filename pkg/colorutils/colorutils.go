package colorutils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToColor converts "#RRGGBB" or "#RRGGBBAA" to a color.NRGBA
func HexToColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	rgba, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16 & 0xFF),
		B: uint8(rgba >> 8 & 0xFF),
		A: uint8(rgba & 0xFF),
	}, nil
}

// HexToColorOr is HexToColor returning def for unparsable values.
func HexToColorOr(hex string, def color.NRGBA) color.NRGBA {
	c, err := HexToColor(hex)
	if err != nil {
		return def
	}
	return c
}
