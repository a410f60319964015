package analyzer

import (
	"github.com/penwyp/go-dormancy-report/internal/core/model"
)

// BuildSummary lays out the wide table with each treatment's improvement.
// Absent cells stay absent; they are never dropped or zeroed.
func BuildSummary(wide *model.WideTable, improvements map[string]model.Improvement) []model.SummaryRow {
	rows := make([]model.SummaryRow, 0, len(wide.Records))
	for _, rec := range wide.Records {
		values := make([]model.Value, len(wide.TimePoints))
		for i, tp := range wide.TimePoints {
			values[i] = rec.Count(tp.Key)
		}

		improvement, ok := improvements[rec.Name]
		if !ok {
			improvement = model.NotComputable()
		}

		rows = append(rows, model.SummaryRow{
			Treatment:   rec.Name,
			ShortName:   rec.DisplayName(),
			Values:      values,
			Improvement: improvement,
		})
	}
	return rows
}
