// Package reshape converts the wide treatment table into long form and derives
// the plot-only view from it.
package reshape

import (
	"github.com/penwyp/go-dormancy-report/internal/core/model"
)

// Melt emits one row per (treatment, time point) in record and time-point
// order. Absent values are kept as absent rows.
func Melt(wide *model.WideTable) *model.LongTable {
	rows := make([]model.LongRecord, 0, wide.Cells())
	for _, rec := range wide.Records {
		for _, tp := range wide.TimePoints {
			rows = append(rows, model.LongRecord{
				Treatment: rec.Name,
				TimePoint: model.NormalizeLabel(tp.Key),
				Day:       tp.Day,
				Value:     rec.Count(tp.Key),
			})
		}
	}
	return model.NewLongTable(rows)
}

// Filter drops the absent rows. The result is for chart rendering only.
func Filter(long *model.LongTable) *model.PlotView {
	all := long.Rows()
	rows := make([]model.LongRecord, 0, len(all))
	for _, row := range all {
		if row.Value.Valid {
			rows = append(rows, row)
		}
	}
	return model.NewPlotView(rows)
}
