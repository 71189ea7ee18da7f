package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{R: 0, G: 0, B: 0}
	Red   = colorful.Color{R: 1, G: 0, B: 0}
	Blue  = colorful.Color{R: 0, G: 0, B: 1}
)

// Gray returns an opaque grey with the given 0-255 level.
func Gray(level uint8) colorful.Color {
	v := float64(level) / 255
	return colorful.Color{R: v, G: v, B: v}
}

// Lerp blends from a to b in RGB space. amt is clamped to [0, 1].
func Lerp(a, b colorful.Color, amt float64) colorful.Color {
	if amt < 0 {
		amt = 0
	} else if amt > 1 {
		amt = 1
	}
	return a.BlendRgb(b, amt).Clamped()
}

// ParsePalette parses "#rrggbb" strings.
func ParsePalette(hexes []string) ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		out = append(out, c)
	}
	return out, nil
}
