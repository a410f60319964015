package chart

import (
	"image/color"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type label struct {
	xy    plotter.XY
	text  string
	color color.Color
	size  vg.Length
}

// labelSet collects centered text annotations for one panel.
type labelSet struct {
	items []label
}

func (s *labelSet) add(x, y float64, text string, c color.Color, size vg.Length) {
	s.items = append(s.items, label{xy: plotter.XY{X: x, Y: y}, text: text, color: c, size: size})
}

func (s *labelSet) addTo(p *plot.Plot) error {
	if len(s.items) == 0 {
		return nil
	}

	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(s.items)),
		Labels: make([]string, len(s.items)),
	}
	for i, item := range s.items {
		xyl.XYs[i] = item.xy
		xyl.Labels[i] = item.text
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return err
	}
	for i, item := range s.items {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Color = item.color
		labels.TextStyle[i].Font.Size = item.size
	}
	p.Add(labels)
	return nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
