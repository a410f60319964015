package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
)

// Report is everything the text outputs print for one run.
type Report struct {
	Title       string
	Unit        string
	Control     string
	Reference   model.TimePoint
	TimePoints  []model.TimePoint
	Stats       []model.ColumnStats
	Rows        []model.SummaryRow
	Notes       []string
	Findings    []string
	Limitations []string
	// ChartPath is empty when no chart was rendered.
	ChartPath string
}

// ReferenceValue returns a row's value at the reference time point.
func (r *Report) ReferenceValue(row model.SummaryRow) model.Value {
	for i, tp := range r.TimePoints {
		if tp.Key == r.Reference.Key && i < len(row.Values) {
			return row.Values[i]
		}
	}
	return model.Absent()
}

type Formatter interface {
	Format(report *Report) error
}

// Output formats
const (
	FormatReport = "report"
	FormatJSON   = "json"
	FormatCSV    = "csv"
)

// SupportedFormats lists the accepted --output values.
var SupportedFormats = []string{FormatReport, FormatJSON, FormatCSV}

// New returns the formatter for the named format.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatReport, "":
		return NewReportFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want one of %v)", format, SupportedFormats)
	}
}
