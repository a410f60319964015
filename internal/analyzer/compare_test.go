package analyzer

import (
	"testing"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/data/dataset"
	"github.com/penwyp/go-dormancy-report/internal/data/reshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprovementPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		control  float64
		expected float64
	}{
		{name: "ga3_vs_water", value: 4.83, control: 2.50, expected: 93.2},
		{name: "thiourea_vs_water", value: 3.00, control: 2.50, expected: 20.0},
		{name: "equal_to_control", value: 2.50, control: 2.50, expected: 0.0},
		{name: "below_control", value: 2.00, control: 2.50, expected: -20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := ImprovementPercent(tt.value, tt.control)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pct)
		})
	}

	_, err := ImprovementPercent(1, 0)
	assert.ErrorIs(t, err, ErrDivisionUndefined)
}

func TestComparativePercentagesDefaultDataset(t *testing.T) {
	wide := dataset.Default().Table
	long := reshape.Melt(wide)
	ref, err := ResolveTimePoint(wide, "17 DAT")
	require.NoError(t, err)

	got, err := ComparativePercentages(wide, long, ref, "Water")
	require.NoError(t, err)

	assert.Equal(t, model.Improvement{Percent: 0, Computable: true}, got["Water"])
	assert.Equal(t, model.Improvement{Percent: 93.2, Computable: true}, got["Gibberellic Acid (GA3)"])
	assert.Equal(t, model.Improvement{Percent: 20.0, Computable: true}, got["Thiourea"])
	assert.Equal(t, model.Improvement{Percent: 20.0, Computable: true}, got["Indole Acetic Acid (IAA)"])
}

func TestComparativePercentagesControlAlwaysZero(t *testing.T) {
	wide := dataset.Default().Table
	long := reshape.Melt(wide)

	for _, tp := range wide.TimePoints {
		for _, control := range wide.Names() {
			got, _ := ComparativePercentages(wide, long, tp, control)
			require.NotNil(t, got)
			assert.Equal(t, model.Improvement{Percent: 0, Computable: true}, got[control],
				"control %s at %s", control, tp.Label)
		}
	}
}

func TestComparativePercentagesAbsentTreatmentValue(t *testing.T) {
	wide := dataset.Default().Table
	long := reshape.Melt(wide)
	ref, _ := ResolveTimePoint(wide, "28_DAT")

	got, err := ComparativePercentages(wide, long, ref, "Water")
	require.NoError(t, err)
	assert.False(t, got["Gibberellic Acid (GA3)"].Computable, "absent value is not computable")
	assert.True(t, got["Thiourea"].Computable)
	assert.Equal(t, 12.3, got["Thiourea"].Percent)
}

func TestComparativePercentagesDivisionUndefined(t *testing.T) {
	tests := []struct {
		name    string
		control model.Value
	}{
		{name: "absent_control", control: model.Absent()},
		{name: "zero_control", control: model.Present(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wide := &model.WideTable{
				TimePoints: []model.TimePoint{{Key: "17_DAT", Label: "17 DAT", Day: 17}},
				Records: []model.TreatmentRecord{
					{Name: "Water", Counts: map[string]model.Value{"17_DAT": tt.control}},
					{Name: "GA3", Counts: map[string]model.Value{"17_DAT": model.Present(4.83)}},
				},
			}
			long := reshape.Melt(wide)

			got, err := ComparativePercentages(wide, long, wide.TimePoints[0], "Water")
			assert.ErrorIs(t, err, ErrDivisionUndefined)
			require.NotNil(t, got)
			assert.False(t, got["GA3"].Computable, "must not be coerced to a computed 0%")
			assert.True(t, got["Water"].Computable)
		})
	}
}

func TestComparativePercentagesUnknownControl(t *testing.T) {
	wide := dataset.Default().Table
	_, err := ComparativePercentages(wide, reshape.Melt(wide), wide.TimePoints[1], "Sugar")
	assert.ErrorIs(t, err, ErrUnknownTreatment)
}

func TestResolveTimePoint(t *testing.T) {
	wide := dataset.Default().Table

	tp, err := ResolveTimePoint(wide, "17_DAT")
	require.NoError(t, err)
	assert.Equal(t, "17 DAT", tp.Label)

	_, err = ResolveTimePoint(wide, "40 DAT")
	assert.ErrorIs(t, err, ErrUnknownTimePoint)
}
