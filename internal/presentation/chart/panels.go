package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	minYMax      = 6.0
	labelRoom    = 1.0
	letterOffset = 0.1
)

func newPanel(title, unit string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Number of " + titleCase(unit)
	return p
}

// yMax keeps the original 0-6 axis and grows it when the data needs room.
func yMax(long *model.LongTable) float64 {
	maxValue := 0.0
	for _, row := range long.Rows() {
		if row.Value.Valid && row.Value.V > maxValue {
			maxValue = row.Value.V
		}
	}
	return math.Max(minYMax, maxValue+labelRoom)
}

// referenceBars draws one bar per treatment at the reference time point.
// With annotate set it uses short names and adds value and improvement labels.
func referenceBars(in *Input, annotate bool) (*plot.Plot, error) {
	title := "Sprouted Tubers at " + in.Reference.Label
	if annotate {
		title = "Treatment Effectiveness at " + in.Reference.Label
	}
	p := newPanel(title, in.Unit)
	p.Y.Min = 0
	p.Y.Max = yMax(in.Long)

	names := make([]string, len(in.Records))
	var labels labelSet
	for i, rec := range in.Records {
		names[i] = rec.Name
		if annotate {
			names[i] = rec.DisplayName()
		}

		v, _ := in.Long.Lookup(rec.Name, in.Reference.Label)
		if !v.Valid {
			continue
		}

		bars, err := plotter.NewBarChart(plotter.Values{v.V}, vg.Points(36))
		if err != nil {
			return nil, err
		}
		bars.XMin = float64(i)
		bars.Color = treatmentColor(in, rec.Name, i)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)

		x := float64(i)
		if letter := in.Significance[rec.Name]; letter != "" {
			y := v.V + letterOffset
			if annotate {
				y = v.V + 0.35
			}
			labels.add(x, y, letter, color.Black, vg.Points(12))
		}
		if !annotate {
			continue
		}

		labels.add(x, v.V+0.02, fmt.Sprintf("%.2f", v.V), color.Black, vg.Points(10))
		if rec.Name == in.Control {
			continue
		}
		if imp, ok := in.Improvements[rec.Name]; ok && imp.Computable {
			labels.add(x, v.V+0.65, imp.Label(), improvementColor, vg.Points(11))
		}
	}

	if err := labels.addTo(p); err != nil {
		return nil, err
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// timelinePanel draws one line per treatment through its present values in
// chronological order.
func timelinePanel(in *Input) (*plot.Plot, error) {
	p := newPanel("Treatment Effects Over Time", in.Unit)
	p.X.Label.Text = "Days After Treatment"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	position := timePointPositions(in.TimePoints)
	for i, rec := range in.Records {
		rows := in.View.ForTreatment(rec.Name)
		if len(rows) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(rows))
		for j, row := range rows {
			xys[j].X = position[row.TimePoint]
			xys[j].Y = row.Value.V
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		c := treatmentColor(in, rec.Name, i)
		line.Color = c
		line.Width = vg.Points(2)
		points.Shape = draw.CircleGlyph{}
		points.Color = c
		points.Radius = vg.Points(4)

		p.Add(line, points)
		p.Legend.Add(rec.Name, line, points)
	}

	p.NominalX(timePointLabels(in.TimePoints)...)
	return p, nil
}

// groupedBars draws one group per time point and one bar per treatment.
// Absent cells get no bar, leaving a gap in the group.
func groupedBars(in *Input) (*plot.Plot, error) {
	p := newPanel("Treatment Effects at Different Time Points", in.Unit)
	p.X.Label.Text = "Days After Treatment"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true
	p.Y.Min = 0
	p.Y.Max = yMax(in.Long)

	width := vg.Points(14)
	n := len(in.Records)
	for i, rec := range in.Records {
		c := treatmentColor(in, rec.Name, i)
		offset := vg.Length(float64(i)-float64(n-1)/2) * width

		var legendBar *plotter.BarChart
		for j, tp := range in.TimePoints {
			v, _ := in.Long.Lookup(rec.Name, tp.Label)
			if !v.Valid {
				continue
			}
			bars, err := plotter.NewBarChart(plotter.Values{v.V}, width)
			if err != nil {
				return nil, err
			}
			bars.XMin = float64(j)
			bars.Offset = offset
			bars.Color = c
			bars.LineStyle.Width = vg.Length(0)
			p.Add(bars)
			if legendBar == nil {
				legendBar = bars
			}
		}
		if legendBar != nil {
			p.Legend.Add(rec.Name, legendBar)
		}
	}

	p.NominalX(timePointLabels(in.TimePoints)...)
	return p, nil
}

func timePointPositions(tps []model.TimePoint) map[string]float64 {
	pos := make(map[string]float64, len(tps))
	for i, tp := range tps {
		pos[tp.Label] = float64(i)
	}
	return pos
}

func timePointLabels(tps []model.TimePoint) []string {
	labels := make([]string, len(tps))
	for i, tp := range tps {
		labels[i] = tp.Label
	}
	return labels
}
