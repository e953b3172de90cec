package chart

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// tableau10 is the categorical palette used for genres.
var tableau10 = []color.RGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xed, G: 0xc9, B: 0x48, A: 0xff},
	{R: 0xb0, G: 0x7a, B: 0xa1, A: 0xff},
	{R: 0xff, G: 0x9d, B: 0xa7, A: 0xff},
	{R: 0x9c, G: 0x75, B: 0x5f, A: 0xff},
	{R: 0xba, G: 0xb0, B: 0xac, A: 0xff},
}

// Palette maps genres to colours by their position in the selection, so a genre
// keeps its colour across all three charts.
type Palette struct {
	order []string
}

// NewPalette builds a palette for the given genre order.
func NewPalette(genres []string) Palette {
	return Palette{order: slices.Clone(genres)}
}

// Color returns the colour for genre. Genres outside the selection are placed after it.
func (p Palette) Color(genre string) color.RGBA {
	i := slices.Index(p.order, genre)
	if i < 0 {
		i = len(p.order)
		for _, b := range []byte(genre) {
			i += int(b)
		}
	}
	return tableau10[i%len(tableau10)]
}

// Hex returns the colour for genre as #rrggbb.
func (p Palette) Hex(genre string) string {
	c := p.Color(genre)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (p Palette) drawing(genre string) drawing.Color {
	c := p.Color(genre)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FormatDollars renders an amount with a K/M/B suffix.
func FormatDollars(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return trimZero(fmt.Sprintf("$%.1f", v/1e9)) + "B"
	case abs >= 1e6:
		return trimZero(fmt.Sprintf("$%.1f", v/1e6)) + "M"
	case abs >= 1e3:
		return trimZero(fmt.Sprintf("$%.1f", v/1e3)) + "K"
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
