package chart

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/plotutil"
)

var namedColors = map[string]color.Color{
	"blue":   color.RGBA{R: 31, G: 119, B: 180, A: 255},
	"red":    color.RGBA{R: 214, G: 39, B: 40, A: 255},
	"green":  color.RGBA{R: 44, G: 160, B: 44, A: 255},
	"orange": color.RGBA{R: 255, G: 127, B: 14, A: 255},
	"purple": color.RGBA{R: 148, G: 103, B: 189, A: 255},
	"brown":  color.RGBA{R: 140, G: 86, B: 75, A: 255},
	"gray":   color.RGBA{R: 127, G: 127, B: 127, A: 255},
	"black":  color.Black,
}

var improvementColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}

// treatmentColor resolves a configured color name, falling back to the
// plotutil palette by record index.
func treatmentColor(in *Input, name string, index int) color.Color {
	if c, ok := namedColors[strings.ToLower(in.Colors[name])]; ok {
		return c
	}
	return plotutil.Color(index)
}
