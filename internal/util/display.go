package util

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const DefaultSeparatorWidth = 60

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads s to a display width. Strings already wider are returned unchanged.
func PadString(s string, width int, leftAlign bool) string {
	actualWidth := GetDisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TerminalWidth returns the width of stdout, or 0 when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// SeparatorWidth is DefaultSeparatorWidth, narrowed to fit a small terminal.
func SeparatorWidth() int {
	if w := TerminalWidth(); w > 0 && w < DefaultSeparatorWidth {
		return w
	}
	return DefaultSeparatorWidth
}

// Separator repeats ch across the separator width.
func Separator(ch string) string {
	return strings.Repeat(ch, SeparatorWidth())
}
