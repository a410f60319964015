package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-dormancy-report/internal/core/model"
	"github.com/penwyp/go-dormancy-report/internal/util"
)

// ReportFormatter prints the human-readable analysis report.
type ReportFormatter struct {
	w io.Writer
}

func NewReportFormatter(w io.Writer) *ReportFormatter {
	return &ReportFormatter{w: w}
}

func (f *ReportFormatter) Format(report *Report) error {
	w := f.w
	banner := util.Separator("=")

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "STATISTICAL %s\n", strings.ToUpper(report.Title))
	fmt.Fprintln(w, banner)

	fmt.Fprintln(w, "\nDescriptive Statistics:")
	describeTable(report).render(w)

	fmt.Fprintf(w, "\nTreatment Effectiveness at %s:\n", report.Reference.Label)
	for _, row := range report.Rows {
		fmt.Fprintln(w, effectivenessLine(report, row))
	}

	printSection(w, "Statistical Analysis Note:", report.Notes, "")

	fmt.Fprintln(w, "\nSummary Table:")
	summaryTable(report).render(w)

	printSection(w, "Key Findings:", report.Findings, "- ")
	printSection(w, "Limitations:", report.Limitations, "- ")

	if report.ChartPath != "" {
		fmt.Fprintf(w, "\nChart saved to: %s\n", report.ChartPath)
	}

	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "ANALYSIS COMPLETE")
	fmt.Fprintln(w, banner)
	return nil
}

func printSection(w io.Writer, title string, lines []string, bullet string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, line := range lines {
		fmt.Fprintf(w, "%s%s\n", bullet, line)
	}
}

func effectivenessLine(report *Report, row model.SummaryRow) string {
	value := report.ReferenceValue(row)
	if row.Treatment == report.Control {
		return fmt.Sprintf("%s (Control): %s %s", row.ShortName, value.Format(2), report.Unit)
	}

	line := fmt.Sprintf("%s: %s %s", row.ShortName, value.Format(2), report.Unit)
	if row.Improvement.Computable {
		return fmt.Sprintf("%s (%s improvement)", line, util.FormatSignedPercent(row.Improvement.Percent))
	}
	return line + " (improvement not computable)"
}

func describeTable(report *Report) *boxTable {
	headers := []string{""}
	for _, cs := range report.Stats {
		headers = append(headers, cs.TimePoint.Key)
	}
	t := newBoxTable(headers...)

	stats := []struct {
		name  string
		value func(cs model.ColumnStats) string
	}{
		{"count", func(cs model.ColumnStats) string { return fmt.Sprintf("%d", cs.Count) }},
		{"mean", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Mean, 6) }},
		{"std", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Std, 6) }},
		{"min", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Min, 6) }},
		{"25%", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Q1, 6) }},
		{"50%", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Median, 6) }},
		{"75%", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Q3, 6) }},
		{"max", func(cs model.ColumnStats) string { return util.FormatFloat(cs.Max, 6) }},
	}
	for _, s := range stats {
		row := []string{s.name}
		for _, cs := range report.Stats {
			row = append(row, s.value(cs))
		}
		t.addRow(row...)
	}
	return t
}

func summaryTable(report *Report) *boxTable {
	headers := []string{"Treatment"}
	for _, tp := range report.TimePoints {
		headers = append(headers, tp.Key)
	}
	headers = append(headers, "Improvement_vs_Control (%)")
	t := newBoxTable(headers...)

	for _, row := range report.Rows {
		values := []string{row.Treatment}
		for _, v := range row.Values {
			values = append(values, v.Format(2))
		}
		values = append(values, improvementCell(row.Improvement))
		t.addRow(values...)
	}
	return t
}

func improvementCell(i model.Improvement) string {
	if !i.Computable {
		return model.NotComputableMarker
	}
	return util.FormatFloat(i.Percent, 1)
}
