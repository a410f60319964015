package formatter

import (
	"fmt"
	"io"
	"math"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-dormancy-report/internal/core/model"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonReport struct {
	Title       string            `json:"title"`
	Unit        string            `json:"unit"`
	Control     string            `json:"control"`
	Reference   model.TimePoint   `json:"reference"`
	TimePoints  []model.TimePoint `json:"time_points"`
	Statistics  []jsonColumnStats `json:"statistics"`
	Treatments  []jsonSummaryRow  `json:"treatments"`
	Notes       []string          `json:"notes,omitempty"`
	Findings    []string          `json:"findings,omitempty"`
	Limitations []string          `json:"limitations,omitempty"`
	ChartPath   string            `json:"chart_path,omitempty"`
}

type jsonColumnStats struct {
	TimePoint string   `json:"time_point"`
	Count     int      `json:"count"`
	Mean      *float64 `json:"mean"`
	Std       *float64 `json:"std"`
	Min       *float64 `json:"min"`
	Q1        *float64 `json:"p25"`
	Median    *float64 `json:"p50"`
	Q3        *float64 `json:"p75"`
	Max       *float64 `json:"max"`
}

type jsonSummaryRow struct {
	Treatment   string                 `json:"treatment"`
	ShortName   string                 `json:"short_name"`
	Values      map[string]model.Value `json:"values"`
	Improvement *float64               `json:"improvement_percent"`
}

// nullable maps NaN to nil so the document stays valid JSON.
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func (f *JSONFormatter) Format(report *Report) error {
	out := jsonReport{
		Title:       report.Title,
		Unit:        report.Unit,
		Control:     report.Control,
		Reference:   report.Reference,
		TimePoints:  report.TimePoints,
		Notes:       report.Notes,
		Findings:    report.Findings,
		Limitations: report.Limitations,
		ChartPath:   report.ChartPath,
	}

	for _, cs := range report.Stats {
		out.Statistics = append(out.Statistics, jsonColumnStats{
			TimePoint: cs.TimePoint.Key,
			Count:     cs.Count,
			Mean:      nullable(cs.Mean),
			Std:       nullable(cs.Std),
			Min:       nullable(cs.Min),
			Q1:        nullable(cs.Q1),
			Median:    nullable(cs.Median),
			Q3:        nullable(cs.Q3),
			Max:       nullable(cs.Max),
		})
	}

	for _, row := range report.Rows {
		values := make(map[string]model.Value, len(row.Values))
		for i, tp := range report.TimePoints {
			if i < len(row.Values) {
				values[tp.Key] = row.Values[i]
			}
		}
		jr := jsonSummaryRow{
			Treatment: row.Treatment,
			ShortName: row.ShortName,
			Values:    values,
		}
		if row.Improvement.Computable {
			jr.Improvement = nullable(row.Improvement.Percent)
		}
		out.Treatments = append(out.Treatments, jr)
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}
