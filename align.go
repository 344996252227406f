package tabulate

import (
	"strings"
	"unicode/utf8"
)

const decimalMarker = "."

// afterPoint returns the number of characters after the decimal marker of a
// numeric string, or -1 for integers and non-numeric text. Floats in
// scientific notation count from the exponent marker.
func afterPoint(s string) int {
	stripped := strings.TrimSpace(stripAnsi(s))
	if !isNumber(stripped) {
		return -1
	}
	if isInt(stripped) {
		return -1
	}
	pos := strings.LastIndex(stripped, decimalMarker)
	if pos < 0 {
		pos = strings.LastIndexAny(stripped, "eE")
	}
	if pos < 0 {
		return -1
	}
	return utf8.RuneCountInString(stripped[pos+1:])
}

func padLeft(s string, width int) string {
	if pad := width - visibleWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func padRight(s string, width int) string {
	if pad := width - visibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padCenter(s string, width int) string {
	pad := width - visibleWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func padLine(s string, width int, align Alignment) string {
	switch align {
	case AlignRight, AlignDecimal:
		return padLeft(s, width)
	case AlignCenter:
		return padCenter(s, width)
	default:
		return padRight(s, width)
	}
}

// alignColumn pads every physical line of a column to a common width and
// returns the finalized width. minWidth accounts for the header-driven
// minimum. For decimal alignment the fraction tails are equalized first so
// that every decimal marker lands in the same display column; integers and
// non-numeric lines absorb one extra space for the absent marker.
func alignColumn(cells [][]string, align Alignment, minWidth int) ([][]string, int) {
	if align == AlignDecimal {
		maxAfter := -1
		afters := make([][]int, len(cells))
		for i, lines := range cells {
			afters[i] = make([]int, len(lines))
			for j, line := range lines {
				a := afterPoint(line)
				afters[i][j] = a
				if a > maxAfter {
					maxAfter = a
				}
			}
		}
		for i, lines := range cells {
			for j, line := range lines {
				if tail := maxAfter - afters[i][j]; tail > 0 {
					cells[i][j] = line + strings.Repeat(" ", tail)
				}
			}
		}
	}

	width := minWidth
	for _, lines := range cells {
		for _, line := range lines {
			if w := visibleWidth(line); w > width {
				width = w
			}
		}
	}
	for i, lines := range cells {
		for j, line := range lines {
			cells[i][j] = padLine(line, width, align)
		}
	}
	return cells, width
}

// alignHeader pads every physical line of a header cell to the finalized
// column width.
func alignHeader(lines []string, align Alignment, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padLine(line, width, align)
	}
	return out
}
