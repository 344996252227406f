package tabulate

import "strings"

func rstripLine(s string) string {
	return strings.TrimRight(s, " \t")
}

func buildLine(lf LineFormat, padded []int, aligns []Alignment) (string, bool) {
	switch lf.kind {
	case lineStatic:
		segments := make([]string, len(padded))
		for j, w := range padded {
			segments[j] = strings.Repeat(lf.line.Fill, w)
		}
		return rstripLine(lf.line.Begin + strings.Join(segments, lf.line.Sep) + lf.line.End), true
	case lineText:
		return lf.text, lf.text != ""
	case lineDynamic:
		return lf.fn(padded, aligns), true
	default:
		return "", false
	}
}

func buildRow(rf RowFormat, cells []string, padded []int, aligns []Alignment) (string, bool) {
	switch rf.kind {
	case rowStatic:
		return rstripLine(rf.row.Begin + strings.Join(cells, rf.row.Sep) + rf.row.End), true
	case rowDynamic:
		return rf.fn(cells, padded, aligns), true
	default:
		return "", false
	}
}

// expandRow turns one logical row of multi-line cells into its physical
// lines. Cells shorter than the row fill with blanks according to valign;
// every incoming line is already padded to its column width.
func expandRow(cells [][]string, widths []int, valign RowAlignment) [][]string {
	height := 1
	for _, lines := range cells {
		if len(lines) > height {
			height = len(lines)
		}
	}
	physical := make([][]string, height)
	for i := range physical {
		physical[i] = make([]string, len(cells))
	}
	for j, lines := range cells {
		blank := strings.Repeat(" ", widths[j])
		top := 0
		switch valign {
		case RowAlignBottom:
			top = height - len(lines)
		case RowAlignCenter:
			top = (height - len(lines)) / 2
		}
		for i := 0; i < height; i++ {
			if i >= top && i-top < len(lines) {
				physical[i][j] = lines[i-top]
			} else {
				physical[i][j] = blank
			}
		}
	}
	return physical
}

// renderTable assembles the final output from aligned cells. cols is
// column-major over the non-separator rows; headerLines is nil when no
// header block renders.
func renderTable(f *TableFormat, opts *Options, m *matrix, cols [][][]string, headerLines [][]string, widths []int, aligns []Alignment) string {
	padded := make([]int, len(widths))
	for j, w := range widths {
		padded[j] = w + 2*f.Padding
	}
	pad := strings.Repeat(" ", f.Padding)
	hasHeader := headerLines != nil
	hidden := func(component string) bool {
		return hasHeader && f.hides(component)
	}

	var out []string
	appendLine := func(lf LineFormat) {
		if s, ok := buildLine(lf, padded, aligns); ok {
			out = append(out, s)
		}
	}
	appendRow := func(cells []string) {
		rf := f.DataRow
		withPad := make([]string, len(cells))
		for j, c := range cells {
			withPad[j] = pad + c + pad
		}
		if s, ok := buildRow(rf, withPad, padded, aligns); ok {
			out = append(out, s)
		}
	}

	if !hidden("lineabove") {
		appendLine(f.LineAbove)
	}

	if hasHeader {
		for _, physical := range expandRow(headerLines, widths, RowAlignTop) {
			withPad := make([]string, len(physical))
			for j, c := range physical {
				withPad[j] = pad + c + pad
			}
			if s, ok := buildRow(f.HeaderRow, withPad, padded, aligns); ok {
				out = append(out, s)
			}
		}
		appendLine(f.LineBelowHeader)
	}

	valignFor := func(dataRow int) RowAlignment {
		if dataRow < len(opts.RowAligns) {
			return opts.RowAligns[dataRow]
		}
		return opts.RowAlign
	}

	betweenRows := f.LineBetweenRows.kind != lineNone && !hidden("linebetweenrows")
	k := 0 // non-separator row ordinal
	emitted := false
	prevSep := false
	for _, r := range m.rows {
		if r.sep {
			// A separator renders with the below-header glyphs; an empty
			// line when the format has none.
			if s, ok := buildLine(f.LineBelowHeader, padded, aligns); ok {
				out = append(out, s)
			} else {
				out = append(out, "")
			}
			prevSep = true
			emitted = true
			continue
		}
		if betweenRows && emitted && !prevSep {
			appendLine(f.LineBetweenRows)
		}
		cells := make([][]string, m.ncols)
		for j := 0; j < m.ncols; j++ {
			cells[j] = cols[j][k]
		}
		for _, physical := range expandRow(cells, widths, valignFor(k)) {
			appendRow(physical)
		}
		k++
		emitted = true
		prevSep = false
	}

	if !hidden("linebelow") {
		appendLine(f.LineBelow)
	}

	return strings.Join(out, "\n")
}
