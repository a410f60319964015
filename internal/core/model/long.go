package model

import (
	"sort"
)

// LongRecord is one (treatment, time point) pair.
type LongRecord struct {
	Treatment string `json:"treatment"`
	TimePoint string `json:"time_point"`
	Day       int    `json:"day"`
	Value     Value  `json:"value"`
}

// LongTable is the authoritative long-form table. Absent values are kept.
type LongTable struct {
	rows []LongRecord
}

func NewLongTable(rows []LongRecord) *LongTable {
	return &LongTable{rows: append([]LongRecord(nil), rows...)}
}

func (t *LongTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rows.
func (t *LongTable) Rows() []LongRecord {
	return append([]LongRecord(nil), t.rows...)
}

// Lookup finds the value for a treatment at a time-point label.
func (t *LongTable) Lookup(treatment, label string) (Value, bool) {
	for _, row := range t.rows {
		if row.Treatment == treatment && row.TimePoint == label {
			return row.Value, true
		}
	}
	return Absent(), false
}

func (t *LongTable) AbsentCount() int {
	n := 0
	for _, row := range t.rows {
		if !row.Value.Valid {
			n++
		}
	}
	return n
}

// PlotView is the chart-only projection of a LongTable with absent rows removed.
type PlotView struct {
	rows []LongRecord
}

func NewPlotView(rows []LongRecord) *PlotView {
	return &PlotView{rows: append([]LongRecord(nil), rows...)}
}

func (v *PlotView) Len() int {
	return len(v.rows)
}

func (v *PlotView) Rows() []LongRecord {
	return append([]LongRecord(nil), v.rows...)
}

// ForTreatment returns the rows of one treatment in chronological order.
func (v *PlotView) ForTreatment(treatment string) []LongRecord {
	var out []LongRecord
	for _, row := range v.rows {
		if row.Treatment == treatment {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}
