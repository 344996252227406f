package tabulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFormat  = errors.New("unknown table format")
	ErrHeaderMismatch = errors.New("header count mismatch")
	ErrInvalidFormat  = errors.New("invalid table format")
)

// Alignment controls cell text alignment within a column.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	// AlignDecimal lines numbers up on their decimal marker and behaves
	// like AlignRight for everything else.
	AlignDecimal
)

var alignmentNames = map[Alignment]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignRight:   "right",
	AlignCenter:  "center",
	AlignDecimal: "decimal",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("alignment(%d)", int(a))
}

// ParseAlignment parses an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignmentNames {
		if name == s {
			return a, nil
		}
	}
	return AlignDefault, fmt.Errorf("unknown alignment %q", s)
}

// HeaderAlignment controls header cell alignment independently of the data
// below it.
type HeaderAlignment int

const (
	HeaderAlignDefault HeaderAlignment = iota
	// HeaderAlignSame mirrors the column's resolved data alignment.
	HeaderAlignSame
	HeaderAlignLeft
	HeaderAlignRight
	HeaderAlignCenter
	HeaderAlignDecimal
)

func (h HeaderAlignment) alignment() Alignment {
	switch h {
	case HeaderAlignLeft:
		return AlignLeft
	case HeaderAlignRight:
		return AlignRight
	case HeaderAlignCenter:
		return AlignCenter
	case HeaderAlignDecimal:
		return AlignDecimal
	default:
		return AlignDefault
	}
}

// Headers selects where the header row comes from.
type Headers int

const (
	// NoHeaders renders data only, unless explicit labels are given.
	NoHeaders Headers = iota
	// FirstRowHeaders promotes the first data row to the header.
	FirstRowHeaders
	// KeysHeaders labels columns with their zero-based positions.
	KeysHeaders
)

// ShowIndex controls the leading index column.
type ShowIndex int

const (
	// IndexDefault shows the index only when index labels are set.
	IndexDefault ShowIndex = iota
	IndexAlways
	IndexNever
)

// RowAlignment controls how short cells fill vertical space when a sibling
// cell wraps onto more lines.
type RowAlignment int

const (
	RowAlignTop RowAlignment = iota
	RowAlignCenter
	RowAlignBottom
)

// FormatSpec selects a number format, either one spec for every column or
// one per column. PerColumn wins when set; empty entries leave the column
// unformatted.
type FormatSpec struct {
	Fixed     string
	PerColumn []string
}

type lineSeparator struct{}

// SeparatingLine marks a row as a horizontal separator. A row containing it
// renders as a rule instead of data.
var SeparatingLine lineSeparator

// Options configures a single render. The zero value renders the "simple"
// format with no headers; NewOptions fills in the usual defaults.
type Options struct {
	// Headers selects the header source; HeaderLabels overrides it with
	// explicit labels.
	Headers      Headers
	HeaderLabels []string

	// TableFormat names a built-in format. Custom, when set, takes
	// precedence and is validated instead of looked up.
	TableFormat string
	Custom      *TableFormat

	// FloatFormat and IntFormat reformat numeric columns. Unset specs
	// leave cell text exactly as given.
	FloatFormat FormatSpec
	IntFormat   FormatSpec

	NumAlign       Alignment
	StrAlign       Alignment
	ColGlobalAlign Alignment
	ColAlign       []Alignment

	HeadersGlobalAlign Alignment
	HeadersAlign       []HeaderAlignment

	RowAlign  RowAlignment
	RowAligns []RowAlignment

	// MissingValue replaces nil cells and cells absent from short rows.
	// MissingValues, when set, applies per column with the last entry
	// covering the overflow.
	MissingValue  string
	MissingValues []string

	ShowIndex   ShowIndex
	IndexLabels []string

	DisableNumParse        bool
	DisableNumParseColumns []int

	// PreserveWhitespace keeps leading and trailing cell whitespace.
	PreserveWhitespace bool

	MaxColWidth        int
	MaxColWidths       []int
	MaxHeaderColWidth  int
	MaxHeaderColWidths []int

	BreakLongWords bool
	BreakOnHyphens bool
}

// NewOptions returns the default configuration: the "simple" format with
// long-word and hyphen breaking enabled.
func NewOptions() Options {
	return Options{
		TableFormat:    "simple",
		BreakLongWords: true,
		BreakOnHyphens: true,
	}
}

// Data columns must be at least this much wider than their header, so a
// header never touches the glyphs of the neighbouring column.
const minHeaderPadding = 2

// Render formats data as a table and returns the result without a trailing
// newline.
func Render(data [][]any, opts Options) (string, error) {
	format := opts.Custom
	if format != nil {
		if err := format.validate(); err != nil {
			return "", err
		}
	} else {
		name := opts.TableFormat
		if name == "" {
			name = "simple"
		}
		var err error
		format, err = lookupFormat(name)
		if err != nil {
			return "", err
		}
	}

	// "pretty" mimics PrettyTable: no extra header padding, no number
	// parsing, centered everything unless told otherwise.
	pretty := opts.Custom == nil && opts.TableFormat == "pretty"
	minPadding := minHeaderPadding
	if pretty {
		minPadding = 0
		opts.DisableNumParse = true
		if opts.NumAlign == AlignDefault {
			opts.NumAlign = AlignCenter
		}
		if opts.StrAlign == AlignDefault {
			opts.StrAlign = AlignCenter
		}
	}

	m, err := normalize(data, &opts)
	if err != nil {
		return "", err
	}
	if m.ncols == 0 && m.headers == nil {
		return "", nil
	}

	// Column-major cell text for the non-separator rows. Missing cells take
	// the configured replacement but stay flagged so they never influence
	// column type inference.
	cols := make([][]string, m.ncols)
	missing := make([][]bool, m.ncols)
	for j := range cols {
		for _, r := range m.rows {
			if r.sep {
				continue
			}
			cell := r.cells[j]
			if r.missing[j] {
				cell = opts.missingFor(j)
			} else if !opts.PreserveWhitespace {
				cell = strings.TrimSpace(cell)
			}
			cols[j] = append(cols[j], cell)
			missing[j] = append(missing[j], r.missing[j])
		}
	}

	aligns := make([]Alignment, m.ncols)
	headerAligns := make([]Alignment, m.ncols)
	for j := range cols {
		var present []string
		for i, cell := range cols[j] {
			if !missing[j][i] {
				present = append(present, cell)
			}
		}
		kind := inferKind(present, !opts.numparseDisabled(j))
		switch kind {
		case kindFloat:
			if spec := specFor(opts.FloatFormat, j); spec != "" {
				for i, cell := range cols[j] {
					if !missing[j][i] {
						cols[j][i] = applyFloatFormat(cell, spec)
					}
				}
			}
		case kindInt:
			if spec := specFor(opts.IntFormat, j); spec != "" {
				for i, cell := range cols[j] {
					if !missing[j][i] {
						cols[j][i] = applyIntFormat(cell, spec)
					}
				}
			}
		}
		aligns[j] = resolveAlign(&opts, j, kind)
		headerAligns[j] = resolveHeaderAlign(&opts, j, aligns[j])
	}

	// Wrap, then settle widths: the header's widest line plus padding is
	// the floor for its column.
	wrapped := make([][][]string, m.ncols)
	for j, col := range cols {
		wrapped[j] = make([][]string, len(col))
		for i, cell := range col {
			wrapped[j][i] = wrapCell(cell, opts.maxColWidth(j), opts.BreakLongWords, opts.BreakOnHyphens)
		}
	}
	var headerLines [][]string
	if m.headers != nil {
		headerLines = make([][]string, m.ncols)
		for j, h := range m.headers {
			headerLines[j] = wrapCell(h, opts.maxHeaderColWidth(j), opts.BreakLongWords, opts.BreakOnHyphens)
		}
	}

	widths := make([]int, m.ncols)
	for j := range wrapped {
		min := 0
		if headerLines != nil {
			min = widestLine(headerLines[j]) + minPadding
		}
		wrapped[j], widths[j] = alignColumn(wrapped[j], aligns[j], min)
		if headerLines != nil {
			headerLines[j] = alignHeader(headerLines[j], headerAligns[j], widths[j])
		}
	}

	return renderTable(format, &opts, m, wrapped, headerLines, widths, aligns), nil
}

// Write renders data and writes it to w with a trailing newline.
func Write(w io.Writer, data [][]any, opts Options) error {
	s, err := Render(data, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString(s)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func (o *Options) maxColWidth(col int) int {
	if col < len(o.MaxColWidths) && o.MaxColWidths[col] > 0 {
		return o.MaxColWidths[col]
	}
	return o.MaxColWidth
}

func (o *Options) maxHeaderColWidth(col int) int {
	if col < len(o.MaxHeaderColWidths) && o.MaxHeaderColWidths[col] > 0 {
		return o.MaxHeaderColWidths[col]
	}
	return o.MaxHeaderColWidth
}
