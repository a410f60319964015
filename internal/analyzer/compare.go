package analyzer

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/util"
)

var (
	// ErrDivisionUndefined means the control value at the reference time
	// point is absent or zero, so no comparative percentage exists.
	ErrDivisionUndefined = errors.New("division undefined: control value is absent or zero")
	ErrUnknownTreatment  = errors.New("unknown treatment")
	ErrUnknownTimePoint  = errors.New("unknown time point")
)

// ResolveTimePoint finds a declared time point by key or label.
func ResolveTimePoint(wide *model.WideTable, s string) (model.TimePoint, error) {
	tp, ok := wide.TimePoint(s)
	if !ok {
		return model.TimePoint{}, fmt.Errorf("%w: %q", ErrUnknownTimePoint, s)
	}
	return tp, nil
}

// ImprovementPercent returns round((value/control - 1) * 100, 1).
func ImprovementPercent(value, control float64) (float64, error) {
	if control == 0 {
		return 0, ErrDivisionUndefined
	}
	return util.Round((value/control-1)*100, 1), nil
}

// ComparativePercentages compares every treatment against control at the
// reference time point. The control itself is always a computed 0.
//
// When the control value is absent or zero every other treatment is marked
// not computable and ErrDivisionUndefined is returned alongside the map.
// A treatment missing its own reference value is not computable but is not
// an error.
func ComparativePercentages(wide *model.WideTable, long *model.LongTable, reference model.TimePoint, control string) (map[string]model.Improvement, error) {
	if _, ok := wide.Record(control); !ok {
		return nil, fmt.Errorf("%w: control %q", ErrUnknownTreatment, control)
	}

	result := make(map[string]model.Improvement, len(wide.Records))
	result[control] = model.Improvement{Percent: 0, Computable: true}

	controlValue, _ := long.Lookup(control, reference.Label)
	if !controlValue.Valid || controlValue.V == 0 {
		for _, rec := range wide.Records {
			if rec.Name != control {
				result[rec.Name] = model.NotComputable()
			}
		}
		return result, fmt.Errorf("%w: %s at %s is %s",
			ErrDivisionUndefined, control, reference.Label, controlValue.Format(2))
	}

	for _, rec := range wide.Records {
		if rec.Name == control {
			continue
		}
		v, _ := long.Lookup(rec.Name, reference.Label)
		if !v.Valid {
			result[rec.Name] = model.NotComputable()
			continue
		}
		pct, err := ImprovementPercent(v.V, controlValue.V)
		if err != nil {
			return nil, err
		}
		result[rec.Name] = model.Improvement{Percent: pct, Computable: true}
	}

	return result, nil
}
