package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#3A7D2C" or "3A7D2C") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Shade scales an RGB color toward black. Intensity is clamped to [floor, 1]
// so night scenes stay readable.
func Shade(color tcell.Color, intensity, floor float64) tcell.Color {
	if intensity > 1 {
		intensity = 1
	}
	if intensity < floor {
		intensity = floor
	}
	r, g, b := color.RGB()
	if r < 0 {
		return color
	}
	scale := func(v int32) int32 { return int32(float64(v) * intensity) }
	return tcell.NewRGBColor(scale(r), scale(g), scale(b))
}
