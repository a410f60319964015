package formatter

import (
	"encoding/csv"
	"io"
)

// CSVFormatter writes the summary table.
type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report *Report) error {
	w := csv.NewWriter(f.w)

	headers := []string{"Treatment", "Short Name"}
	for _, tp := range report.TimePoints {
		headers = append(headers, tp.Key)
	}
	headers = append(headers, "Improvement_vs_Control (%)")
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{row.Treatment, row.ShortName}
		for _, v := range row.Values {
			record = append(record, v.Format(2))
		}
		record = append(record, improvementCell(row.Improvement))
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
