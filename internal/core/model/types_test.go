package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWide() *WideTable {
	return &WideTable{
		TimePoints: []TimePoint{
			{Key: "9_DAT", Label: "9 DAT", Day: 9},
			{Key: "28_DAT", Label: "28 DAT", Day: 28},
		},
		Records: []TreatmentRecord{
			{Name: "Water", Counts: map[string]Value{"9_DAT": Present(2.33), "28_DAT": Present(4.16)}},
			{Name: "Gibberellic Acid (GA3)", ShortName: "GA3", Counts: map[string]Value{"9_DAT": Present(4.67)}},
		},
	}
}

func TestValueFormat(t *testing.T) {
	assert.Equal(t, "2.50", Present(2.5).Format(2))
	assert.Equal(t, MissingMarker, Absent().Format(2))
	assert.Equal(t, Absent(), FromPtr(nil))
	f := 1.5
	assert.Equal(t, Present(1.5), FromPtr(&f))
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal([]Value{Present(4.83), Absent()})
	require.NoError(t, err)
	assert.JSONEq(t, `[4.83, null]`, string(data))

	var decoded []Value
	require.NoError(t, json.Unmarshal([]byte(`[3, null]`), &decoded))
	assert.Equal(t, []Value{Present(3), Absent()}, decoded)
}

func TestWideTableColumn(t *testing.T) {
	wide := sampleWide()

	col := wide.Column("28_DAT")
	require.Len(t, col, 2)
	assert.Equal(t, Present(4.16), col[0])
	assert.False(t, col[1].Valid, "missing map key must read as absent")
	assert.Equal(t, 4, wide.Cells())
}

func TestWideTableLookups(t *testing.T) {
	wide := sampleWide()

	rec, ok := wide.Record("Gibberellic Acid (GA3)")
	require.True(t, ok)
	assert.Equal(t, "GA3", rec.DisplayName())

	water, _ := wide.Record("Water")
	assert.Equal(t, "Water", water.DisplayName())

	_, ok = wide.Record("Unknown")
	assert.False(t, ok)

	tp, ok := wide.TimePoint("28 DAT")
	require.True(t, ok)
	assert.Equal(t, 28, tp.Day)

	assert.Equal(t, []string{"Water", "Gibberellic Acid (GA3)"}, wide.Names())
}

func TestPlotViewForTreatmentIsChronological(t *testing.T) {
	view := NewPlotView([]LongRecord{
		{Treatment: "Water", TimePoint: "28 DAT", Day: 28, Value: Present(4.16)},
		{Treatment: "Water", TimePoint: "9 DAT", Day: 9, Value: Present(2.33)},
		{Treatment: "IAA", TimePoint: "9 DAT", Day: 9, Value: Present(2.33)},
		{Treatment: "Water", TimePoint: "17 DAT", Day: 17, Value: Present(2.50)},
	})

	rows := view.ForTreatment("Water")
	require.Len(t, rows, 3)
	assert.Equal(t, []int{9, 17, 28}, []int{rows[0].Day, rows[1].Day, rows[2].Day})
	assert.Empty(t, view.ForTreatment("Thiourea"))
}

func TestLongTableIsReadOnly(t *testing.T) {
	rows := []LongRecord{
		{Treatment: "Water", TimePoint: "9 DAT", Day: 9, Value: Present(2.33)},
		{Treatment: "GA3", TimePoint: "28 DAT", Day: 28, Value: Absent()},
	}
	table := NewLongTable(rows)
	rows[0].Value = Absent()

	v, ok := table.Lookup("Water", "9 DAT")
	require.True(t, ok)
	assert.True(t, v.Valid, "table must not alias the caller's slice")

	out := table.Rows()
	out[0].Value = Absent()
	v, _ = table.Lookup("Water", "9 DAT")
	assert.True(t, v.Valid)

	assert.Equal(t, 1, table.AbsentCount())
	_, ok = table.Lookup("Water", "28 DAT")
	assert.False(t, ok)
}

func TestImprovementLabel(t *testing.T) {
	assert.Equal(t, "+93.2%", Improvement{Percent: 93.2, Computable: true}.Label())
	assert.Equal(t, "+0.0%", Improvement{Computable: true}.Label())
	assert.Equal(t, "-12.5%", Improvement{Percent: -12.5, Computable: true}.Label())
	assert.Equal(t, NotComputableMarker, NotComputable().Label())
}
