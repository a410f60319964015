package model

import (
	"strconv"
)

// Value is an optional measurement. The zero Value is absent.
type Value struct {
	V     float64
	Valid bool
}

func Present(v float64) Value {
	return Value{V: v, Valid: true}
}

func Absent() Value {
	return Value{}
}

// FromPtr converts a nullable decoded number into a Value.
func FromPtr(p *float64) Value {
	if p == nil {
		return Absent()
	}
	return Present(*p)
}

// Format renders the value with the given precision, or MissingMarker when absent.
func (v Value) Format(prec int) string {
	if !v.Valid {
		return MissingMarker
	}
	return strconv.FormatFloat(v.V, 'f', prec, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.V, 'f', -1, 64), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Absent()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = Present(f)
	return nil
}
