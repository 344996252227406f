package tabulate

import (
	"fmt"
	"slices"
	"strconv"
)

type normRow struct {
	cells   []string
	missing []bool
	sep     bool
}

type matrix struct {
	headers []string // nil when no header block renders
	rows    []normRow
	ncols   int
}

// cellString converts one raw cell to its display string. The second result
// reports the missing sentinel.
func cellString(v any) (string, bool) {
	switch c := v.(type) {
	case nil:
		return "", true
	case string:
		return c, false
	case []byte:
		return string(c), false
	case bool:
		if c {
			return "True", false
		}
		return "False", false
	case int:
		return strconv.Itoa(c), false
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", c), false
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", c), false
	case float32:
		return strconv.FormatFloat(float64(c), 'g', -1, 32), false
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64), false
	case fmt.Stringer:
		return c.String(), false
	default:
		return fmt.Sprintf("%v", c), false
	}
}

func isSeparatingRow(row []any) bool {
	return slices.ContainsFunc(row, func(v any) bool {
		_, ok := v.(lineSeparator)
		return ok
	})
}

// normalize reshapes raw input into a uniform matrix: separator sentinels
// become separator rows, short rows are padded with the missing sentinel,
// the optional index column is prepended, and the header block is resolved.
func normalize(data [][]any, opts *Options) (*matrix, error) {
	rows := make([]normRow, 0, len(data))
	for _, raw := range data {
		if isSeparatingRow(raw) {
			rows = append(rows, normRow{sep: true})
			continue
		}
		r := normRow{
			cells:   make([]string, len(raw)),
			missing: make([]bool, len(raw)),
		}
		for j, v := range raw {
			r.cells[j], r.missing[j] = cellString(v)
		}
		rows = append(rows, r)
	}

	var headers []string
	derived := false // headers derived from the data shape, padded freely
	switch {
	case len(opts.HeaderLabels) > 0:
		headers = slices.Clone(opts.HeaderLabels)
	case opts.Headers == FirstRowHeaders:
		if len(rows) > 0 && !rows[0].sep {
			first := rows[0]
			rows = rows[1:]
			headers = make([]string, len(first.cells))
			for j, c := range first.cells {
				if first.missing[j] {
					c = opts.missingFor(j)
				}
				headers[j] = c
			}
			derived = true
		}
	}

	ncols := 0
	for _, r := range rows {
		if !r.sep && len(r.cells) > ncols {
			ncols = len(r.cells)
		}
	}
	if opts.Headers == KeysHeaders && headers == nil {
		headers = make([]string, ncols)
		for j := range headers {
			headers[j] = strconv.Itoa(j)
		}
		derived = true
	}

	showIndex := opts.ShowIndex == IndexAlways || len(opts.IndexLabels) > 0
	if opts.ShowIndex == IndexNever {
		showIndex = false
	}
	if showIndex {
		n := 0
		for i := range rows {
			if rows[i].sep {
				continue
			}
			label := strconv.Itoa(n)
			if n < len(opts.IndexLabels) {
				label = opts.IndexLabels[n]
			}
			rows[i].cells = append([]string{label}, rows[i].cells...)
			rows[i].missing = append([]bool{false}, rows[i].missing...)
			n++
		}
		ncols++
		if derived {
			headers = append([]string{""}, headers...)
		}
	}

	if headers != nil {
		switch {
		case len(headers) == ncols:
		case derived && len(headers) < ncols:
			for len(headers) < ncols {
				headers = append(headers, "")
			}
		case len(headers) > ncols:
			// Headers establish the column count; short rows pad out below.
			ncols = len(headers)
		case showIndex && len(headers) == ncols-1:
			headers = append([]string{""}, headers...)
		default:
			return nil, fmt.Errorf("%w: %d headers for %d columns", ErrHeaderMismatch, len(headers), ncols)
		}
	}

	for i := range rows {
		if rows[i].sep {
			continue
		}
		for len(rows[i].cells) < ncols {
			rows[i].missing = append(rows[i].missing, true)
			rows[i].cells = append(rows[i].cells, "")
		}
	}

	return &matrix{headers: headers, rows: rows, ncols: ncols}, nil
}
