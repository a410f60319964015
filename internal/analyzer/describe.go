package analyzer

import (
	"math"
	"sort"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe computes per-column statistics over present values only.
// Statistics that need more values than are present are NaN.
func Describe(wide *model.WideTable) []model.ColumnStats {
	out := make([]model.ColumnStats, 0, len(wide.TimePoints))
	for _, tp := range wide.TimePoints {
		out = append(out, describeColumn(tp, wide.Column(tp.Key)))
	}
	return out
}

func describeColumn(tp model.TimePoint, column []model.Value) model.ColumnStats {
	xs := presentValues(column)
	cs := model.ColumnStats{
		TimePoint: tp,
		Count:     len(xs),
		Mean:      math.NaN(),
		Std:       math.NaN(),
		Min:       math.NaN(),
		Q1:        math.NaN(),
		Median:    math.NaN(),
		Q3:        math.NaN(),
		Max:       math.NaN(),
	}
	if len(xs) == 0 {
		return cs
	}

	sort.Float64s(xs)
	cs.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		cs.Std = stat.StdDev(xs, nil)
	}
	cs.Min = floats.Min(xs)
	cs.Max = floats.Max(xs)
	cs.Q1 = linearQuantile(xs, 0.25)
	cs.Median = linearQuantile(xs, 0.50)
	cs.Q3 = linearQuantile(xs, 0.75)
	return cs
}

func presentValues(column []model.Value) []float64 {
	xs := make([]float64, 0, len(column))
	for _, v := range column {
		if v.Valid {
			xs = append(xs, v.V)
		}
	}
	return xs
}

// linearQuantile interpolates between the order statistics at (n-1)*p.
// sorted must be ascending and non-empty.
func linearQuantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
