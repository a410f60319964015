package model

import (
	"fmt"
)

// Improvement is a comparative percentage against the control.
// Computable is false when the percentage could not be derived.
type Improvement struct {
	Percent    float64
	Computable bool
}

func NotComputable() Improvement {
	return Improvement{}
}

// Label renders the improvement as "+93.2%", or NotComputableMarker.
func (i Improvement) Label() string {
	if !i.Computable {
		return NotComputableMarker
	}
	return fmt.Sprintf("%+.1f%%", i.Percent)
}

// SummaryRow is the wide-form row printed in the summary table.
type SummaryRow struct {
	Treatment   string
	ShortName   string
	Values      []Value
	Improvement Improvement
}

// ColumnStats describes one time-point column over its present values.
type ColumnStats struct {
	TimePoint TimePoint
	Count     int
	Mean      float64
	Std       float64
	Min       float64
	Q1        float64
	Median    float64
	Q3        float64
	Max       float64
}
