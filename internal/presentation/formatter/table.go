package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-dormancy-report/internal/util"
)

// boxTable renders a box-drawn table. The first column is left-aligned,
// the rest are right-aligned.
type boxTable struct {
	headers []string
	rows    [][]string
}

func newBoxTable(headers ...string) *boxTable {
	return &boxTable{headers: headers}
}

func (t *boxTable) addRow(values ...string) {
	t.rows = append(t.rows, values)
}

func (t *boxTable) render(w io.Writer) {
	widths := t.calculateColumnWidths()

	t.printBorder(w, widths, "top")
	t.printRow(w, t.headers, widths)
	t.printBorder(w, widths, "middle")
	for _, row := range t.rows {
		t.printRow(w, row, widths)
	}
	t.printBorder(w, widths, "bottom")
}

// calculateColumnWidths determines the display width of each column
func (t *boxTable) calculateColumnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range t.rows {
		for i, value := range row {
			if i < len(widths) && util.GetDisplayWidth(value) > widths[i] {
				widths[i] = util.GetDisplayWidth(value)
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (t *boxTable) printBorder(w io.Writer, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(w, b.String())
}

func (t *boxTable) printRow(w io.Writer, values []string, widths []int) {
	var b strings.Builder
	b.WriteString("│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		b.WriteString(" ")
		b.WriteString(util.PadString(value, width, i == 0))
		b.WriteString(" │")
	}
	fmt.Fprintln(w, b.String())
}
