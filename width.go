package tabulate

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI color/style escape sequences are preserved in output but contribute
// nothing to display width. Covers CSI sequences and OSC hyperlinks
// terminated by ESC-backslash.
var ansiEscape = regexp.MustCompile(`\x1b(?:\[[0-9;]*[A-Za-z]|\][^\x1b]*\x1b\\)`)

// stripAnsi removes ANSI escape sequences from s.
func stripAnsi(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansiEscape.ReplaceAllString(s, "")
}

// visibleWidth returns the display width of a single physical line: wide
// (fullwidth) runes count 2, zero-width and combining runes count 0, escape
// sequences count 0, everything else counts 1.
func visibleWidth(s string) int {
	return runewidth.StringWidth(stripAnsi(s))
}

// maxLineWidth returns the widest physical line of a multiline cell.
func maxLineWidth(s string) int {
	return widestLine(strings.Split(s, "\n"))
}

// widestLine returns the largest display width among already-split lines.
func widestLine(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := visibleWidth(line); w > max {
			max = w
		}
	}
	return max
}
