package tabulate

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Line describes a horizontal rule: characters before the first column, the
// fill above/below each column, the characters between columns, and the
// characters after the last column.
type Line struct {
	Begin, Fill, Sep, End string
}

// DataRow describes a rendered row: characters before the first cell,
// between adjacent cells, and after the last cell.
type DataRow struct {
	Begin, Sep, End string
}

// LineFunc generates a horizontal rule from the padded column widths and
// alignments.
type LineFunc func(widths []int, aligns []Alignment) string

// RowFunc renders a single row from the padded cell values.
type RowFunc func(cells []string, widths []int, aligns []Alignment) string

type lineKind int

const (
	lineNone lineKind = iota
	lineStatic
	lineText
	lineDynamic
)

// LineFormat selects how one structural line of a table renders. The zero
// value renders nothing.
type LineFormat struct {
	kind lineKind
	line Line
	text string
	fn   LineFunc
}

// StaticLine renders a rule from fixed glyphs.
func StaticLine(begin, fill, sep, end string) LineFormat {
	return LineFormat{kind: lineStatic, line: Line{Begin: begin, Fill: fill, Sep: sep, End: end}}
}

// TextLine renders a literal string as-is; an empty string renders nothing.
func TextLine(text string) LineFormat {
	return LineFormat{kind: lineText, text: text}
}

// DynamicLine renders a rule with a callback.
func DynamicLine(fn LineFunc) LineFormat {
	return LineFormat{kind: lineDynamic, fn: fn}
}

type rowKind int

const (
	rowNone rowKind = iota
	rowStatic
	rowDynamic
)

// RowFormat selects how a header or data row renders. The zero value renders
// nothing.
type RowFormat struct {
	kind rowKind
	row  DataRow
	fn   RowFunc
}

// StaticRow renders cells between fixed tokens.
func StaticRow(begin, sep, end string) RowFormat {
	return RowFormat{kind: rowStatic, row: DataRow{Begin: begin, Sep: sep, End: end}}
}

// DynamicRow renders a row with a callback.
func DynamicRow(fn RowFunc) RowFormat {
	return RowFormat{kind: rowDynamic, fn: fn}
}

// TableFormat is an immutable descriptor of one output style: the four
// structural lines, the header and data row templates, the cell padding, and
// the components hidden when a header block renders.
type TableFormat struct {
	LineAbove       LineFormat
	LineBelowHeader LineFormat
	LineBetweenRows LineFormat
	LineBelow       LineFormat
	HeaderRow       RowFormat
	DataRow         RowFormat
	Padding         int
	WithHeaderHide  []string
}

func (f *TableFormat) hides(component string) bool {
	for _, c := range f.WithHeaderHide {
		if c == component {
			return true
		}
	}
	return false
}

var hideComponents = map[string]bool{
	"lineabove":       true,
	"linebelowheader": true,
	"linebetweenrows": true,
	"linebelow":       true,
}

// validate rejects structurally incomplete custom descriptors.
func (f *TableFormat) validate() error {
	if f.Padding < 0 {
		return fmt.Errorf("%w: negative padding", ErrInvalidFormat)
	}
	if f.DataRow.kind == rowNone {
		return fmt.Errorf("%w: missing data row", ErrInvalidFormat)
	}
	for _, rf := range []RowFormat{f.HeaderRow, f.DataRow} {
		if rf.kind == rowDynamic && rf.fn == nil {
			return fmt.Errorf("%w: dynamic row without a function", ErrInvalidFormat)
		}
	}
	for _, lf := range []LineFormat{f.LineAbove, f.LineBelowHeader, f.LineBetweenRows, f.LineBelow} {
		if lf.kind == lineDynamic && lf.fn == nil {
			return fmt.Errorf("%w: dynamic line without a function", ErrInvalidFormat)
		}
	}
	for _, c := range f.WithHeaderHide {
		if !hideComponents[c] {
			return fmt.Errorf("%w: unknown hidden component %q", ErrInvalidFormat, c)
		}
	}
	return nil
}

// SimpleSeparatedFormat builds a borderless format whose columns are joined
// by sep, the simplified extension point for callers that only want a
// delimiter.
func SimpleSeparatedFormat(sep string) *TableFormat {
	return &TableFormat{
		HeaderRow: StaticRow("", sep, ""),
		DataRow:   StaticRow("", sep, ""),
	}
}

// --- Dynamic line and row functions ---

func formatAlign(aligns []Alignment, i int) Alignment {
	if i < len(aligns) && aligns[i] != AlignDefault {
		return aligns[i]
	}
	return AlignLeft
}

func pipeSegmentWithColons(align Alignment, width int) string {
	if width < 1 {
		width = 1
	}
	switch align {
	case AlignRight, AlignDecimal:
		if width == 1 {
			return ":"
		}
		return strings.Repeat("-", width-1) + ":"
	case AlignCenter:
		if width <= 2 {
			return "::"[:width]
		}
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		if width == 1 {
			return ":"
		}
		return ":" + strings.Repeat("-", width-1)
	}
}

func pipeLineWithColons(widths []int, aligns []Alignment) string {
	segments := make([]string, len(widths))
	if len(aligns) == 0 {
		for i, w := range widths {
			segments[i] = strings.Repeat("-", w)
		}
		return "|" + strings.Join(segments, "|") + "|"
	}
	for i, w := range widths {
		segments[i] = pipeSegmentWithColons(formatAlign(aligns, i), w)
	}
	return "|" + strings.Join(segments, "|") + "|"
}

func mediawikiRowWithAttrs(sep string, cells []string, aligns []Alignment) string {
	values := make([]string, len(cells))
	for i, cell := range cells {
		var attr string
		switch formatAlign(aligns, i) {
		case AlignRight, AlignDecimal:
			attr = ` align="right"| `
		case AlignCenter:
			attr = ` align="center"| `
		}
		if attr == "" {
			values[i] = " " + cell + " "
		} else {
			values[i] = attr + cell
		}
	}
	result := sep + strings.Join(values, sep+sep)
	return strings.TrimRightFunc(result, unicode.IsSpace)
}

func mediawikiHeaderRow(cells []string, _ []int, aligns []Alignment) string {
	return mediawikiRowWithAttrs("!", cells, aligns)
}

func mediawikiDataRow(cells []string, _ []int, aligns []Alignment) string {
	return mediawikiRowWithAttrs("|", cells, aligns)
}

func moinRowWithAttrs(celltag, marker string, cells []string, widths []int, aligns []Alignment) string {
	var out strings.Builder
	for i, value := range cells {
		align := formatAlign(aligns, i)
		var attr string
		switch align {
		case AlignRight, AlignDecimal:
			attr = `<style="text-align: right;">`
		case AlignCenter:
			attr = `<style="text-align: center;">`
		}
		total := visibleWidth(value)
		if i < len(widths) {
			total = widths[i]
		}
		// Two display cells are reserved for the surrounding spaces.
		inner := total - 2
		core := value
		if cur := visibleWidth(core); cur < inner {
			pad := inner - cur
			var left, right int
			switch align {
			case AlignRight, AlignDecimal:
				left = pad
			case AlignCenter:
				left = pad / 2
				right = pad - left
			default:
				right = pad
			}
			core = strings.Repeat(" ", left) + core + strings.Repeat(" ", right)
		}
		out.WriteString(celltag)
		out.WriteString(attr)
		out.WriteString(" ")
		out.WriteString(marker)
		out.WriteString(core)
		out.WriteString(marker)
		out.WriteString(" ")
	}
	out.WriteString("||")
	return out.String()
}

func moinHeaderRow(cells []string, widths []int, aligns []Alignment) string {
	return moinRowWithAttrs("||", "'''", cells, widths, aligns)
}

func moinDataRow(cells []string, widths []int, aligns []Alignment) string {
	return moinRowWithAttrs("||", "", cells, widths, aligns)
}

func htmlBeginTableWithoutHeader(_ []int, _ []Alignment) string {
	return "<table>\n<tbody>"
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func htmlRowWithAttrs(celltag string, unsafeMode bool, cells []string, aligns []Alignment) string {
	values := make([]string, len(cells))
	for i, cell := range cells {
		var attr string
		switch formatAlign(aligns, i) {
		case AlignRight, AlignDecimal:
			attr = ` style="text-align: right;"`
		case AlignCenter:
			attr = ` style="text-align: center;"`
		}
		content := cell
		if !unsafeMode {
			content = htmlEscaper.Replace(cell)
		}
		values[i] = fmt.Sprintf("<%s%s>%s</%s>", celltag, attr, content, celltag)
	}
	rowhtml := strings.TrimRightFunc("<tr>"+strings.Join(values, "")+"</tr>", unicode.IsSpace)
	if celltag == "th" {
		return "<table>\n<thead>\n" + rowhtml + "\n</thead>\n<tbody>"
	}
	return rowhtml
}

func htmlHeaderRowSafe(cells []string, _ []int, aligns []Alignment) string {
	return htmlRowWithAttrs("th", false, cells, aligns)
}

func htmlDataRowSafe(cells []string, _ []int, aligns []Alignment) string {
	return htmlRowWithAttrs("td", false, cells, aligns)
}

func htmlHeaderRowUnsafe(cells []string, _ []int, aligns []Alignment) string {
	return htmlRowWithAttrs("th", true, cells, aligns)
}

func htmlDataRowUnsafe(cells []string, _ []int, aligns []Alignment) string {
	return htmlRowWithAttrs("td", true, cells, aligns)
}

func latexBeginTabular(aligns []Alignment, booktabs, longtable bool) string {
	var cols strings.Builder
	for _, a := range aligns {
		switch a {
		case AlignRight, AlignDecimal:
			cols.WriteByte('r')
		case AlignCenter:
			cols.WriteByte('c')
		default:
			cols.WriteByte('l')
		}
	}
	begin := `\begin{tabular}{`
	if longtable {
		begin = `\begin{longtable}{`
	}
	rule := `\hline`
	if booktabs {
		rule = `\toprule`
	}
	return begin + cols.String() + "}\n" + rule
}

func latexLineBeginTabular(_ []int, aligns []Alignment) string {
	return latexBeginTabular(aligns, false, false)
}

func latexLineBeginTabularBooktabs(_ []int, aligns []Alignment) string {
	return latexBeginTabular(aligns, true, false)
}

func latexLineBeginTabularLongtable(_ []int, aligns []Alignment) string {
	return latexBeginTabular(aligns, false, true)
}

func latexEscape(value string) string {
	var out strings.Builder
	for _, ch := range value {
		switch ch {
		case '&':
			out.WriteString(`\&`)
		case '%':
			out.WriteString(`\%`)
		case '$':
			out.WriteString(`\$`)
		case '#':
			out.WriteString(`\#`)
		case '_':
			out.WriteString(`\_`)
		case '^':
			out.WriteString(`\^{}`)
		case '{':
			out.WriteString(`\{`)
		case '}':
			out.WriteString(`\}`)
		case '~':
			out.WriteString(`\textasciitilde{}`)
		case '\\':
			out.WriteString(`\textbackslash{}`)
		case '<':
			out.WriteString(`\ensuremath{<}`)
		case '>':
			out.WriteString(`\ensuremath{>}`)
		default:
			out.WriteRune(ch)
		}
	}
	return out.String()
}

func latexRowEscaped(cells []string, _ []int, _ []Alignment) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = latexEscape(cell)
	}
	return strings.Join(escaped, "&") + `\\`
}

func latexRowRaw(cells []string, _ []int, _ []Alignment) string {
	return strings.Join(cells, "&") + `\\`
}

func textileRowWithAttrs(cells []string, _ []int, aligns []Alignment) string {
	if len(cells) == 0 {
		return "||"
	}
	parts := make([]string, len(cells))
	for i, value := range cells {
		if i == 0 {
			value += " "
		}
		var prefix string
		switch formatAlign(aligns, i) {
		case AlignRight, AlignDecimal:
			prefix = ">."
		case AlignCenter:
			prefix = "=."
		default:
			prefix = "<."
		}
		parts[i] = prefix + value
	}
	return "|" + strings.Join(parts, "|") + "|"
}

func asciidocAlignmentCode(align Alignment) byte {
	switch align {
	case AlignRight, AlignDecimal:
		return '>'
	case AlignCenter:
		return '^'
	default:
		return '<'
	}
}

func asciidocHeaderLine(isHeader bool, widths []int, aligns []Alignment) string {
	specifiers := make([]string, len(widths))
	for i, w := range widths {
		specifiers[i] = fmt.Sprintf("%d%c", w, asciidocAlignmentCode(formatAlign(aligns, i)))
	}
	entries := []string{fmt.Sprintf("cols=%q", strings.Join(specifiers, ","))}
	if isHeader {
		entries = append(entries, `options="header"`)
	}
	return "[" + strings.Join(entries, ",") + "]\n|===="
}

func asciidocLineAbove(widths []int, aligns []Alignment) string {
	return asciidocHeaderLine(false, widths, aligns)
}

func asciidocHeaderRow(cells []string, widths []int, aligns []Alignment) string {
	return asciidocHeaderLine(true, widths, aligns) + "\n|" + strings.Join(cells, "|")
}

func asciidocDataRow(cells []string, _ []int, _ []Alignment) string {
	return "|" + strings.Join(cells, "|")
}

// --- Catalogue ---

// tableFormats is the built-in catalogue, populated once and read-only
// afterwards. Custom descriptors travel in Options rather than being
// registered here.
var tableFormats = map[string]*TableFormat{
	"asciidoc": {
		LineAbove:      DynamicLine(asciidocLineAbove),
		LineBelow:      StaticLine("|====", "", "", ""),
		HeaderRow:      DynamicRow(asciidocHeaderRow),
		DataRow:        DynamicRow(asciidocDataRow),
		Padding:        1,
		WithHeaderHide: []string{"lineabove"},
	},
	"colon_grid": {
		LineAbove:       StaticLine("", "-", "  ", ""),
		LineBelowHeader: StaticLine("", "-", "  ", ""),
		LineBelow:       StaticLine("", "-", "  ", ""),
		HeaderRow:       StaticRow("", "  ", ""),
		DataRow:         StaticRow("", "  ", ""),
		WithHeaderHide:  []string{"lineabove", "linebelow"},
	},
	"double_grid": {
		LineAbove:       StaticLine("╔", "═", "╦", "╗"),
		LineBelowHeader: StaticLine("╠", "═", "╬", "╣"),
		LineBetweenRows: StaticLine("╠", "═", "╬", "╣"),
		LineBelow:       StaticLine("╚", "═", "╩", "╝"),
		HeaderRow:       StaticRow("║", "║", "║"),
		DataRow:         StaticRow("║", "║", "║"),
		Padding:         1,
	},
	"double_outline": {
		LineAbove:       StaticLine("╔", "═", "╦", "╗"),
		LineBelowHeader: StaticLine("╠", "═", "╬", "╣"),
		LineBelow:       StaticLine("╚", "═", "╩", "╝"),
		HeaderRow:       StaticRow("║", "║", "║"),
		DataRow:         StaticRow("║", "║", "║"),
		Padding:         1,
	},
	"fancy_grid": {
		LineAbove:       StaticLine("╒", "═", "╤", "╕"),
		LineBelowHeader: StaticLine("╞", "═", "╪", "╡"),
		LineBetweenRows: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("╘", "═", "╧", "╛"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"fancy_outline": {
		LineAbove:       StaticLine("╒", "═", "╤", "╕"),
		LineBelowHeader: StaticLine("╞", "═", "╪", "╡"),
		LineBelow:       StaticLine("╘", "═", "╧", "╛"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"github": {
		LineAbove:       StaticLine("|", "-", "|", "|"),
		LineBelowHeader: StaticLine("|", "-", "|", "|"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
		WithHeaderHide:  []string{"lineabove"},
	},
	"grid": {
		LineAbove:       StaticLine("+", "-", "+", "+"),
		LineBelowHeader: StaticLine("+", "=", "+", "+"),
		LineBetweenRows: StaticLine("+", "-", "+", "+"),
		LineBelow:       StaticLine("+", "-", "+", "+"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
	},
	"heavy_grid": {
		LineAbove:       StaticLine("┏", "━", "┳", "┓"),
		LineBelowHeader: StaticLine("┣", "━", "╋", "┫"),
		LineBetweenRows: StaticLine("┣", "━", "╋", "┫"),
		LineBelow:       StaticLine("┗", "━", "┻", "┛"),
		HeaderRow:       StaticRow("┃", "┃", "┃"),
		DataRow:         StaticRow("┃", "┃", "┃"),
		Padding:         1,
	},
	"heavy_outline": {
		LineAbove:       StaticLine("┏", "━", "┳", "┓"),
		LineBelowHeader: StaticLine("┣", "━", "╋", "┫"),
		LineBelow:       StaticLine("┗", "━", "┻", "┛"),
		HeaderRow:       StaticRow("┃", "┃", "┃"),
		DataRow:         StaticRow("┃", "┃", "┃"),
		Padding:         1,
	},
	"html": {
		LineAbove:       DynamicLine(htmlBeginTableWithoutHeader),
		LineBelowHeader: TextLine(""),
		LineBelow:       StaticLine("</tbody>\n</table>", "", "", ""),
		HeaderRow:       DynamicRow(htmlHeaderRowSafe),
		DataRow:         DynamicRow(htmlDataRowSafe),
		WithHeaderHide:  []string{"lineabove"},
	},
	"jira": {
		HeaderRow: StaticRow("||", "||", "||"),
		DataRow:   StaticRow("|", "|", "|"),
		Padding:   1,
	},
	"latex": {
		LineAbove:       DynamicLine(latexLineBeginTabular),
		LineBelowHeader: StaticLine(`\hline`, "", "", ""),
		LineBelow:       StaticLine("\\hline\n\\end{tabular}", "", "", ""),
		HeaderRow:       DynamicRow(latexRowEscaped),
		DataRow:         DynamicRow(latexRowEscaped),
		Padding:         1,
	},
	"latex_booktabs": {
		LineAbove:       DynamicLine(latexLineBeginTabularBooktabs),
		LineBelowHeader: StaticLine(`\midrule`, "", "", ""),
		LineBelow:       StaticLine("\\bottomrule\n\\end{tabular}", "", "", ""),
		HeaderRow:       DynamicRow(latexRowEscaped),
		DataRow:         DynamicRow(latexRowEscaped),
		Padding:         1,
	},
	"latex_longtable": {
		LineAbove:       DynamicLine(latexLineBeginTabularLongtable),
		LineBelowHeader: StaticLine("\\hline\n\\endhead", "", "", ""),
		LineBelow:       StaticLine("\\hline\n\\end{longtable}", "", "", ""),
		HeaderRow:       DynamicRow(latexRowEscaped),
		DataRow:         DynamicRow(latexRowEscaped),
		Padding:         1,
	},
	"latex_raw": {
		LineAbove:       DynamicLine(latexLineBeginTabular),
		LineBelowHeader: StaticLine(`\hline`, "", "", ""),
		LineBelow:       StaticLine("\\hline\n\\end{tabular}", "", "", ""),
		HeaderRow:       DynamicRow(latexRowRaw),
		DataRow:         DynamicRow(latexRowRaw),
		Padding:         1,
	},
	"mediawiki": {
		LineAbove: StaticLine(
			`{| class="wikitable" style="text-align: left;"`,
			"", "",
			"\n|+ <!-- caption -->\n|-",
		),
		LineBelowHeader: StaticLine("|-", "", "", ""),
		LineBetweenRows: StaticLine("|-", "", "", ""),
		LineBelow:       StaticLine("|}", "", "", ""),
		HeaderRow:       DynamicRow(mediawikiHeaderRow),
		DataRow:         DynamicRow(mediawikiDataRow),
	},
	"mixed_grid": {
		LineAbove:       StaticLine("┍", "━", "┯", "┑"),
		LineBelowHeader: StaticLine("┝", "━", "┿", "┥"),
		LineBetweenRows: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("┕", "━", "┷", "┙"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"mixed_outline": {
		LineAbove:       StaticLine("┍", "━", "┯", "┑"),
		LineBelowHeader: StaticLine("┝", "━", "┿", "┥"),
		LineBelow:       StaticLine("┕", "━", "┷", "┙"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"moinmoin": {
		HeaderRow: DynamicRow(moinHeaderRow),
		DataRow:   DynamicRow(moinDataRow),
		Padding:   1,
	},
	"orgtbl": {
		LineBelowHeader: StaticLine("|", "-", "+", "|"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
	},
	"outline": {
		LineAbove:       StaticLine("+", "-", "+", "+"),
		LineBelowHeader: StaticLine("+", "=", "+", "+"),
		LineBelow:       StaticLine("+", "-", "+", "+"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
	},
	"pipe": {
		LineAbove:       DynamicLine(pipeLineWithColons),
		LineBelowHeader: DynamicLine(pipeLineWithColons),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
		WithHeaderHide:  []string{"lineabove"},
	},
	"plain": {
		HeaderRow: StaticRow("", "  ", ""),
		DataRow:   StaticRow("", "  ", ""),
	},
	"presto": {
		LineBelowHeader: StaticLine("", "-", "+", ""),
		HeaderRow:       StaticRow("", "|", ""),
		DataRow:         StaticRow("", "|", ""),
		Padding:         1,
	},
	"pretty": {
		LineAbove:       StaticLine("+", "-", "+", "+"),
		LineBelowHeader: StaticLine("+", "-", "+", "+"),
		LineBelow:       StaticLine("+", "-", "+", "+"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
	},
	"psql": {
		LineAbove:       StaticLine("+", "-", "+", "+"),
		LineBelowHeader: StaticLine("|", "-", "+", "|"),
		LineBelow:       StaticLine("+", "-", "+", "+"),
		HeaderRow:       StaticRow("|", "|", "|"),
		DataRow:         StaticRow("|", "|", "|"),
		Padding:         1,
	},
	"rounded_grid": {
		LineAbove:       StaticLine("╭", "─", "┬", "╮"),
		LineBelowHeader: StaticLine("├", "─", "┼", "┤"),
		LineBetweenRows: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("╰", "─", "┴", "╯"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"rounded_outline": {
		LineAbove:       StaticLine("╭", "─", "┬", "╮"),
		LineBelowHeader: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("╰", "─", "┴", "╯"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"rst": {
		LineAbove:       StaticLine("", "=", "  ", ""),
		LineBelowHeader: StaticLine("", "=", "  ", ""),
		LineBelow:       StaticLine("", "=", "  ", ""),
		HeaderRow:       StaticRow("", "  ", ""),
		DataRow:         StaticRow("", "  ", ""),
	},
	"simple": {
		LineAbove:       StaticLine("", "-", "  ", ""),
		LineBelowHeader: StaticLine("", "-", "  ", ""),
		LineBelow:       StaticLine("", "-", "  ", ""),
		HeaderRow:       StaticRow("", "  ", ""),
		DataRow:         StaticRow("", "  ", ""),
		WithHeaderHide:  []string{"lineabove", "linebelow"},
	},
	"simple_grid": {
		LineAbove:       StaticLine("┌", "─", "┬", "┐"),
		LineBelowHeader: StaticLine("├", "─", "┼", "┤"),
		LineBetweenRows: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("└", "─", "┴", "┘"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"simple_outline": {
		LineAbove:       StaticLine("┌", "─", "┬", "┐"),
		LineBelowHeader: StaticLine("├", "─", "┼", "┤"),
		LineBelow:       StaticLine("└", "─", "┴", "┘"),
		HeaderRow:       StaticRow("│", "│", "│"),
		DataRow:         StaticRow("│", "│", "│"),
		Padding:         1,
	},
	"textile": {
		HeaderRow: StaticRow("|_. ", "|_.", "|"),
		DataRow:   DynamicRow(textileRowWithAttrs),
		Padding:   1,
	},
	"tsv": {
		HeaderRow: StaticRow("", "\t", ""),
		DataRow:   StaticRow("", "\t", ""),
	},
	"unsafehtml": {
		LineAbove:       DynamicLine(htmlBeginTableWithoutHeader),
		LineBelowHeader: TextLine(""),
		LineBelow:       StaticLine("</tbody>\n</table>", "", "", ""),
		HeaderRow:       DynamicRow(htmlHeaderRowUnsafe),
		DataRow:         DynamicRow(htmlDataRowUnsafe),
		WithHeaderHide:  []string{"lineabove"},
	},
	"youtrack": {
		HeaderRow: StaticRow("|| ", " || ", " || "),
		DataRow:   StaticRow("| ", " | ", " |"),
		Padding:   1,
	},
}

// Formats returns the sorted names of all built-in table formats.
func Formats() []string {
	names := make([]string, 0, len(tableFormats))
	for name := range tableFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupFormat(name string) (*TableFormat, error) {
	if f, ok := tableFormats[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
