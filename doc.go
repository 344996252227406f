// Package tabulate renders tabular data as plain text and lightweight markup.
//
// The central entry points are [Render] and [Write], which accept rows of
// arbitrary cell values and an [Options] struct. Cells may be strings,
// numbers, booleans, nil (a missing value), or anything implementing
// [fmt.Stringer]. [NewOptions] returns sensible defaults; the zero Options
// also works.
//
//	s, err := tabulate.Render([][]any{
//		{"spam", 41.9999},
//		{"eggs", 451},
//	}, tabulate.NewOptions())
//
// # Table Formats
//
// Output styles are named descriptors: "simple" (the default), "plain",
// "grid", "github", "pipe", "html", "latex", "rst", and some thirty others.
// [Formats] lists them all. Set Options.TableFormat to pick one, or supply a
// custom [TableFormat] in Options.Custom. [SimpleSeparatedFormat] builds a
// minimal delimiter-only descriptor.
//
// # Headers
//
// A header row comes from Options.HeaderLabels, from the first data row
// ([FirstRowHeaders]), or from column positions ([KeysHeaders]). Formats that
// draw a rule above the table usually hide it when a header block renders;
// each descriptor carries its own hide list.
//
// # Alignment and Numbers
//
// Columns whose cells all parse as numbers align on the decimal marker by
// default; text columns align left. Override per column with
// Options.ColAlign, or globally with NumAlign and StrAlign. Number parsing
// can be disabled wholesale or per column, and FloatFormat/IntFormat
// reformat numeric columns with python-style specs such as ".2f" or ",d".
//
// # Width Control
//
// MaxColWidth and MaxColWidths wrap long cells onto multiple lines; words
// break on spaces, optionally on hyphens, and mid-word when BreakLongWords
// is set. Display width is measured in terminal cells, so East Asian wide
// characters count as two and ANSI escape sequences count as zero.
//
// # Collections
//
// [RenderItems] renders a slice whose element type implements [Rower]
// (and optionally [Headed]); [RenderMaps] renders maps with sorted keys as
// columns.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownFormat] — unrecognized TableFormat name
//   - [ErrHeaderMismatch] — header count disagrees with the column count
//   - [ErrInvalidFormat] — structurally invalid custom descriptor
package tabulate
