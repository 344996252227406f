package tabulate

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindMixed
	kindText
)

// isInt reports whether s is an integer literal: optional sign followed by
// decimal digits, any length.
func isInt(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isNumber reports whether s parses as a number: float syntax, with
// non-finite values accepted only as the exact spellings "inf", "-inf",
// and "nan".
func isNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s == "inf" || s == "-inf" || s == "nan"
	}
	return true
}

// inferKind classifies a column from its non-missing cells: integer when all
// parse as integers, float when all parse as numbers, mixed when only some
// do, text otherwise. Mixed aligns like text.
func inferKind(cells []string, numparse bool) columnKind {
	if !numparse {
		return kindText
	}
	seen := false
	allInt := true
	allNum := true
	anyNum := false
	for _, c := range cells {
		s := strings.TrimSpace(stripAnsi(c))
		seen = true
		ci := isInt(s)
		cn := ci || isNumber(s)
		allInt = allInt && ci
		allNum = allNum && cn
		anyNum = anyNum || cn
	}
	switch {
	case !seen:
		return kindInt
	case allInt:
		return kindInt
	case allNum:
		return kindFloat
	case anyNum:
		return kindMixed
	default:
		return kindText
	}
}

// groupThousands inserts comma separators into the integer digits of a
// formatted number.
func groupThousands(s string) string {
	end := len(s)
	if i := strings.IndexAny(s, ".eE"); i >= 0 {
		end = i
	}
	start := 0
	if end > 0 && (s[0] == '+' || s[0] == '-') {
		start = 1
	}
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:start])
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > start {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	b.WriteString(s[end:])
	return b.String()
}

// formatFloatSpec renders v under a python-style format spec: optional ","
// grouping, optional ".N" precision, and a final type of f, F, e, E, g, G,
// or %. An empty spec means general notation with six significant digits.
func formatFloatSpec(v float64, spec string) string {
	grouping := strings.Contains(spec, ",")
	spec = strings.ReplaceAll(spec, ",", "")

	typ := byte('g')
	if n := len(spec); n > 0 {
		last := spec[n-1]
		if strings.IndexByte("fFeEgG%", last) >= 0 {
			typ = last
			spec = spec[:n-1]
		}
	}
	prec := -1
	if rest, ok := strings.CutPrefix(spec, "."); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			prec = n
		}
	}
	if prec < 0 {
		prec = 6
	}

	var s string
	switch typ {
	case 'f', 'F':
		s = strconv.FormatFloat(v, 'f', prec, 64)
	case 'e', 'E':
		s = strconv.FormatFloat(v, typ, prec, 64)
	case 'G':
		s = strconv.FormatFloat(v, 'G', prec, 64)
	case '%':
		s = strconv.FormatFloat(v*100, 'f', prec, 64) + "%"
	default:
		s = strconv.FormatFloat(v, 'g', prec, 64)
	}
	if grouping {
		s = groupThousands(s)
	}
	return s
}

// applyFloatFormat reformats a numeric cell under spec, keeping any escape
// sequences around the numeral intact: the stripped text is formatted and
// spliced back over the original numeral.
func applyFloatFormat(cell, spec string) string {
	raw := stripAnsi(cell)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return cell
	}
	formatted := formatFloatSpec(v, spec)
	if raw == cell {
		return formatted
	}
	return strings.Replace(cell, raw, formatted, 1)
}

// applyIntFormat reformats an integer cell. Supported specs: "d" decimal,
// "," grouped decimal, and the bases "b", "o", "x", "X".
func applyIntFormat(cell, spec string) string {
	raw := stripAnsi(cell)
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return cell
	}
	var formatted string
	switch spec {
	case "d":
		formatted = strconv.FormatInt(v, 10)
	case ",", ",d":
		formatted = groupThousands(strconv.FormatInt(v, 10))
	case "b":
		formatted = strconv.FormatInt(v, 2)
	case "o":
		formatted = strconv.FormatInt(v, 8)
	case "x":
		formatted = strconv.FormatInt(v, 16)
	case "X":
		formatted = strings.ToUpper(strconv.FormatInt(v, 16))
	default:
		return cell
	}
	if raw == cell {
		return formatted
	}
	return strings.Replace(cell, raw, formatted, 1)
}

func specFor(fs FormatSpec, col int) string {
	if len(fs.PerColumn) > 0 {
		if col < len(fs.PerColumn) {
			return fs.PerColumn[col]
		}
		return ""
	}
	return fs.Fixed
}

func (o *Options) missingFor(col int) string {
	if len(o.MissingValues) > 0 {
		if col < len(o.MissingValues) {
			return o.MissingValues[col]
		}
		return o.MissingValues[len(o.MissingValues)-1]
	}
	return o.MissingValue
}

func (o *Options) numparseDisabled(col int) bool {
	if o.DisableNumParse {
		return true
	}
	return slices.Contains(o.DisableNumParseColumns, col)
}

// resolveAlign picks a column's data alignment: per-column override, then
// the global override, then the alignment configured for the inferred type,
// then the type default.
func resolveAlign(o *Options, col int, kind columnKind) Alignment {
	if col < len(o.ColAlign) && o.ColAlign[col] != AlignDefault {
		return o.ColAlign[col]
	}
	if o.ColGlobalAlign != AlignDefault {
		return o.ColGlobalAlign
	}
	if kind == kindInt || kind == kindFloat {
		if o.NumAlign != AlignDefault {
			return o.NumAlign
		}
		return AlignDecimal
	}
	if o.StrAlign != AlignDefault {
		return o.StrAlign
	}
	return AlignLeft
}

// resolveHeaderAlign picks a header cell's alignment, defaulting to the
// column's resolved data alignment.
func resolveHeaderAlign(o *Options, col int, colAlign Alignment) Alignment {
	if col < len(o.HeadersAlign) {
		switch ha := o.HeadersAlign[col]; ha {
		case HeaderAlignDefault:
		case HeaderAlignSame:
			return colAlign
		default:
			return ha.alignment()
		}
	}
	if o.HeadersGlobalAlign != AlignDefault {
		return o.HeadersGlobalAlign
	}
	return colAlign
}
