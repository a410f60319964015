package model

// TreatmentRecord is one row of the wide table.
type TreatmentRecord struct {
	Name      string
	ShortName string
	// Counts is keyed by TimePoint.Key. A missing key is absent.
	Counts map[string]Value
}

// Count returns the value at the given time-point key.
func (r TreatmentRecord) Count(key string) Value {
	return r.Counts[key]
}

// DisplayName prefers the short name.
func (r TreatmentRecord) DisplayName() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.Name
}

// WideTable holds one row per treatment and one column per time point.
// The first record is the control by convention.
type WideTable struct {
	TimePoints []TimePoint
	Records    []TreatmentRecord
}

// Column returns the values of one time point in record order.
func (w *WideTable) Column(key string) []Value {
	values := make([]Value, len(w.Records))
	for i, rec := range w.Records {
		values[i] = rec.Count(key)
	}
	return values
}

// Record looks up a treatment by name.
func (w *WideTable) Record(name string) (TreatmentRecord, bool) {
	for _, rec := range w.Records {
		if rec.Name == name {
			return rec, true
		}
	}
	return TreatmentRecord{}, false
}

// TimePoint resolves a key or label to a declared time point.
func (w *WideTable) TimePoint(s string) (TimePoint, bool) {
	for _, tp := range w.TimePoints {
		if tp.Matches(s) {
			return tp, true
		}
	}
	return TimePoint{}, false
}

// Names returns the treatment names in record order.
func (w *WideTable) Names() []string {
	names := make([]string, len(w.Records))
	for i, rec := range w.Records {
		names[i] = rec.Name
	}
	return names
}

// Cells is the number of (treatment, time point) pairs.
func (w *WideTable) Cells() int {
	return len(w.Records) * len(w.TimePoints)
}
