package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TimePoint is one measurement day, e.g. Key "17_DAT", Label "17 DAT", Day 17.
type TimePoint struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Day   int    `json:"day"`
}

// NormalizeLabel turns an internal key such as "9_DAT" into the display label "9 DAT".
func NormalizeLabel(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), KeySeparator, LabelSeparator)
}

// ParseTimePoint builds a TimePoint from a key that starts with its day number.
func ParseTimePoint(key string) (TimePoint, error) {
	trimmed := strings.TrimSpace(key)
	end := strings.IndexFunc(trimmed, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(trimmed)
	}
	if end == 0 {
		return TimePoint{}, fmt.Errorf("time point %q does not start with a day number", key)
	}

	day, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return TimePoint{}, fmt.Errorf("invalid day in time point %q: %w", key, err)
	}

	return TimePoint{
		Key:   strings.ReplaceAll(trimmed, LabelSeparator, KeySeparator),
		Label: NormalizeLabel(trimmed),
		Day:   day,
	}, nil
}

// Matches reports whether s names this time point by key or label.
func (tp TimePoint) Matches(s string) bool {
	return s == tp.Key || NormalizeLabel(s) == tp.Label
}
