package analyzer

import (
	"math"
	"testing"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/data/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeExcludesAbsentValues(t *testing.T) {
	stats := Describe(dataset.Default().Table)
	require.Len(t, stats, 3)

	day28 := stats[2]
	assert.Equal(t, "28_DAT", day28.TimePoint.Key)
	assert.Equal(t, 3, day28.Count)
	assert.InDelta(t, 4.50, day28.Mean, 1e-9, "absent must not count as zero")
	assert.Equal(t, 4.16, day28.Min)
	assert.Equal(t, 4.67, day28.Max)
	assert.InDelta(t, 0.294448637, day28.Std, 1e-6)
	assert.InDelta(t, 4.415, day28.Q1, 1e-9)
	assert.InDelta(t, 4.67, day28.Median, 1e-9)
}

func TestDescribeCompleteColumn(t *testing.T) {
	stats := Describe(dataset.Default().Table)

	day9 := stats[0]
	assert.Equal(t, 4, day9.Count)
	assert.InDelta(t, 3.0825, day9.Mean, 1e-9)
	assert.Equal(t, 2.33, day9.Min)
	assert.Equal(t, 4.67, day9.Max)
	assert.InDelta(t, 2.33, day9.Q1, 1e-9)
	assert.InDelta(t, 2.665, day9.Median, 1e-9)
	assert.InDelta(t, 3.4175, day9.Q3, 1e-9)
}

func TestDescribeSparseColumns(t *testing.T) {
	wide := &model.WideTable{
		TimePoints: []model.TimePoint{
			{Key: "9_DAT", Label: "9 DAT", Day: 9},
			{Key: "17_DAT", Label: "17 DAT", Day: 17},
		},
		Records: []model.TreatmentRecord{
			{Name: "Water", Counts: map[string]model.Value{"9_DAT": model.Present(2)}},
			{Name: "GA3", Counts: map[string]model.Value{}},
		},
	}

	stats := Describe(wide)

	single := stats[0]
	assert.Equal(t, 1, single.Count)
	assert.Equal(t, 2.0, single.Mean)
	assert.True(t, math.IsNaN(single.Std), "std needs at least two values")

	empty := stats[1]
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Max))
}

func TestBuildSummaryKeepsAbsentCells(t *testing.T) {
	wide := dataset.Default().Table
	rows := BuildSummary(wide, map[string]model.Improvement{
		"Water": {Computable: true},
	})

	require.Len(t, rows, 4)
	assert.Equal(t, "GA3", rows[1].ShortName)
	require.Len(t, rows[1].Values, 3)
	assert.False(t, rows[1].Values[2].Valid)
	assert.Equal(t, model.Present(4.83), rows[1].Values[1])

	assert.True(t, rows[0].Improvement.Computable)
	assert.False(t, rows[1].Improvement.Computable, "missing improvement is not computable")
}
