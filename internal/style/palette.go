package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteColor is an opaque RGB entry of the posterize palette.
type PaletteColor struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Hex returns the color as "#rrggbb".
func (c PaletteColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func mustPaletteColor(name, hex string) PaletteColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("style: bad palette color %s %q: %v", name, hex, err))
	}
	r, g, b := c.RGB255()
	return PaletteColor{Name: name, R: r, G: g, B: b}
}

// palette holds the 9 fill colors followed by the outline color.
var palette = [10]PaletteColor{
	mustPaletteColor("red", "#e63946"),
	mustPaletteColor("navy", "#1d3557"),
	mustPaletteColor("teal-blue", "#457b9d"),
	mustPaletteColor("teal-green", "#2a9d8f"),
	mustPaletteColor("yellow", "#e9c46a"),
	mustPaletteColor("orange", "#f4a261"),
	mustPaletteColor("pink-red", "#ef476f"),
	mustPaletteColor("slate", "#577590"),
	mustPaletteColor("white", "#fafafa"),
	mustPaletteColor("near-black", "#0f0f14"),
}

// Palette returns all 10 entries; the last one is OutlineColor.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette[:])
	return out
}

// FillColors returns the 9 block fill colors in match order.
func FillColors() []PaletteColor {
	return Palette()[:9]
}

// OutlineColor returns the color used to trace edges.
func OutlineColor() PaletteColor {
	return palette[9]
}

// nearestFill returns the fill color closest to (r, g, b) by squared RGB
// distance. Ties go to the earlier entry.
func nearestFill(r, g, b uint8) PaletteColor {
	best := palette[0]
	bestD := dist2(r, g, b, best)
	for _, c := range palette[1:9] {
		if d := dist2(r, g, b, c); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func dist2(r, g, b uint8, c PaletteColor) int {
	dr := int(r) - int(c.R)
	dg := int(g) - int(c.G)
	db := int(b) - int(c.B)
	return dr*dr + dg*dg + db*db
}
