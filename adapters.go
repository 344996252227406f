package tabulate

import "sort"

// Rower provides row data. Implement it on a slice element type to render
// collections with RenderItems.
type Rower interface {
	Row() []any
}

// Headed provides column headers. Optional; without it RenderItems renders
// whatever Options.Headers selects.
type Headed interface {
	Header() []string
}

// RenderItems renders a slice of row providers. When the element type also
// implements Headed and no explicit labels are set, its headers are used.
func RenderItems[T Rower](items []T, opts Options) (string, error) {
	data := make([][]any, len(items))
	for i, item := range items {
		data[i] = item.Row()
	}
	if len(items) > 0 && len(opts.HeaderLabels) == 0 {
		if h, ok := any(items[0]).(Headed); ok {
			opts.HeaderLabels = h.Header()
		}
	}
	return Render(data, opts)
}

// RenderMaps renders a slice of maps as rows. Columns are the sorted union
// of all keys; keys absent from a map render as missing values. Under
// KeysHeaders the keys become the header labels, unless explicit
// HeaderLabels win.
func RenderMaps(items []map[string]any, opts Options) (string, error) {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range items {
		for k := range item {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	data := make([][]any, len(items))
	for i, item := range items {
		row := make([]any, len(keys))
		for j, k := range keys {
			if v, ok := item[k]; ok {
				row[j] = v
			}
		}
		data[i] = row
	}
	if opts.Headers == KeysHeaders && len(opts.HeaderLabels) == 0 {
		opts.HeaderLabels = keys
	}
	return Render(data, opts)
}
