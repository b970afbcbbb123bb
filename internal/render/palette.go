package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// Palette selects how a cell byte is turned into a colour.
type Palette uint8

const (
	// PaletteGray maps the value straight to a grey level.
	PaletteGray Palette = iota
	// PaletteHSB drives hue and saturation from the value on a 0..100 scale
	// at full brightness, so anything above 100 saturates.
	PaletteHSB
	// PaletteViridis samples the perceptually uniform viridis gradient.
	PaletteViridis

	paletteCount
)

var paletteNames = [paletteCount]string{"gray", "hsb", "viridis"}

var palettes = [paletteCount][]color.RGBA{
	buildGray(),
	buildHSB(),
	buildViridis(),
}

// ParsePalette resolves a palette by name.
func ParsePalette(name string) (Palette, error) {
	for i, n := range paletteNames {
		if strings.EqualFold(name, n) {
			return Palette(i), nil
		}
	}
	return PaletteGray, fmt.Errorf("unknown palette %q (want one of %s)", name, strings.Join(paletteNames[:], ", "))
}

// String returns the palette name.
func (p Palette) String() string {
	if p >= paletteCount {
		return fmt.Sprintf("Palette(%d)", uint8(p))
	}
	return paletteNames[p]
}

// Next cycles to the following palette.
func (p Palette) Next() Palette { return (p + 1) % paletteCount }

// Colors returns the 256-entry lookup table for the palette.
func (p Palette) Colors() []color.RGBA {
	if p >= paletteCount {
		return palettes[PaletteGray]
	}
	return palettes[p]
}

func buildGray() []color.RGBA {
	out := make([]color.RGBA, 256)
	for i := range out {
		v := uint8(i)
		out[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return out
}

func buildHSB() []color.RGBA {
	out := make([]color.RGBA, 256)
	for i := range out {
		t := float64(min(i, 100)) / 100
		r, g, b := colorful.Hsv(math.Mod(t*360, 360), t, 1).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func buildViridis() []color.RGBA {
	grad := colorgrad.Viridis()
	out := make([]color.RGBA, 256)
	for i, c := range grad.Colors(256) {
		r, g, b, _ := c.RGBA()
		out[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	}
	return out
}
