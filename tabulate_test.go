package tabulate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/tabulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scores = [][]any{
	{"Name", "Score"},
	{"Alice", 10},
	{"Bob", 1000},
}

func firstRow(format string) tabulate.Options {
	opts := tabulate.NewOptions()
	opts.TableFormat = format
	opts.Headers = tabulate.FirstRowHeaders
	return opts
}

func TestRenderSimpleDefault(t *testing.T) {
	t.Parallel()
	got, err := tabulate.Render(scores, firstRow("simple"))
	require.NoError(t, err)
	want := strings.Join([]string{
		"Name      Score",
		"------  -------",
		"Alice        10",
		"Bob        1000",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderPresto(t *testing.T) {
	t.Parallel()
	got, err := tabulate.Render(scores, firstRow("presto"))
	require.NoError(t, err)
	want := strings.Join([]string{
		" Name   |   Score",
		"--------+---------",
		" Alice  |      10",
		" Bob    |    1000",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderTSV(t *testing.T) {
	t.Parallel()
	got, err := tabulate.Render(scores, firstRow("tsv"))
	require.NoError(t, err)
	want := "Name  \t  Score\nAlice \t     10\nBob   \t   1000"
	assert.Equal(t, want, got)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "nope"
	_, err := tabulate.Render(scores, opts)
	assert.ErrorIs(t, err, tabulate.ErrUnknownFormat)
}

func TestRenderHeaderMismatch(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.HeaderLabels = []string{"only one"}
	_, err := tabulate.Render([][]any{{"a", "b"}}, opts)
	assert.ErrorIs(t, err, tabulate.ErrHeaderMismatch)
}

func TestRenderInvalidCustomFormat(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.Custom = &tabulate.TableFormat{}
	_, err := tabulate.Render(scores, opts)
	assert.ErrorIs(t, err, tabulate.ErrInvalidFormat)
}

func TestRenderHeadersWiderThanRows(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.HeaderLabels = []string{"a", "b", "c"}
	got, err := tabulate.Render([][]any{{1}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "  a    b    c\n  1", got)
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()
	got, err := tabulate.Render(nil, tabulate.NewOptions())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRenderHeadersOnly(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.HeaderLabels = []string{"A", "B"}
	got, err := tabulate.Render(nil, opts)
	require.NoError(t, err)
	assert.Equal(t, "  A    B", got)
}

func TestRenderSeparatingLine(t *testing.T) {
	t.Parallel()
	data := [][]any{
		{"a"},
		{tabulate.SeparatingLine},
		{"b"},
	}
	got, err := tabulate.Render(data, tabulate.NewOptions())
	require.NoError(t, err)
	assert.Equal(t, "-\na\n-\nb\n-", got)
}

func TestRenderShowIndex(t *testing.T) {
	t.Parallel()
	opts := firstRow("plain")
	opts.ShowIndex = tabulate.IndexAlways
	got, err := tabulate.Render([][]any{
		{"Sun", "696000"},
		{"Earth", "6371"},
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, "    Sun      696000\n 0  Earth      6371", got)
}

func TestRenderIndexLabels(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.IndexLabels = []string{"a", "b"}
	got, err := tabulate.Render([][]any{{"x"}, {"y"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "a  x\nb  y", got)
}

func TestRenderAnsiWidths(t *testing.T) {
	t.Parallel()
	opts := firstRow("plain")
	got, err := tabulate.Render([][]any{
		{"Name", "Value"},
		{"\x1b[31mRed\x1b[0m", 10},
		{"Plain", 5},
	}, opts)
	require.NoError(t, err)
	want := strings.Join([]string{
		"Name      Value",
		"\x1b[31mRed\x1b[0m          10",
		"Plain         5",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderPreserveWhitespace(t *testing.T) {
	t.Parallel()
	opts := firstRow("plain")
	opts.PreserveWhitespace = true
	got, err := tabulate.Render([][]any{
		{"Name", "Value"},
		{"  Alice", " 10"},
		{"Bob  ", "5"},
	}, opts)
	require.NoError(t, err)
	want := strings.Join([]string{
		"Name       Value",
		"  Alice       10",
		"Bob            5",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderMissingValue(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.MissingValue = "?"
	got, err := tabulate.Render([][]any{{"a", nil}, {"b", 2}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "a  ?\nb  2", got)
}

func TestRenderMissingValuesPerColumn(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.MissingValues = []string{"-", "?"}
	got, err := tabulate.Render([][]any{{nil, nil}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "-  ?", got)
}

func TestRenderFloatFormat(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.FloatFormat = tabulate.FormatSpec{Fixed: ".2f"}
	got, err := tabulate.Render([][]any{{1.5}, {2.25}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "1.50\n2.25", got)
}

func TestRenderIntFormatGrouping(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.IntFormat = tabulate.FormatSpec{Fixed: ","}
	got, err := tabulate.Render([][]any{{1234567}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)
}

func TestRenderCustomSeparatedFormat(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.Custom = tabulate.SimpleSeparatedFormat(" | ")
	got, err := tabulate.Render([][]any{{"a", 1}, {"bb", 22}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "a  |  1\nbb | 22", got)
}

func TestRenderKeysHeaders(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.Headers = tabulate.KeysHeaders
	got, err := tabulate.Render([][]any{{"a", "b"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "0    1\na    b", got)
}

func TestRenderColGlobalAlign(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.ColGlobalAlign = tabulate.AlignRight
	got, err := tabulate.Render([][]any{{"a"}, {"ccc"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "  a\nccc", got)
}

func TestRenderHeadersAlign(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.HeaderLabels = []string{"Score"}
	opts.HeadersAlign = []tabulate.HeaderAlignment{tabulate.HeaderAlignLeft}
	got, err := tabulate.Render([][]any{{10}, {1000}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "Score\n     10\n   1000", got)
}

func TestRenderRowAlignsPerRow(t *testing.T) {
	t.Parallel()
	opts := firstRow("grid")
	opts.RowAligns = []tabulate.RowAlignment{tabulate.RowAlignTop, tabulate.RowAlignBottom}
	got, err := tabulate.Render([][]any{
		{"Name", "Description"},
		{"Mercury", "nearest\nplanet"},
		{"Venus", "second\nplanet"},
	}, opts)
	require.NoError(t, err)
	want := strings.Join([]string{
		"+---------+---------------+",
		"| Name    | Description   |",
		"+=========+===============+",
		"| Mercury | nearest       |",
		"|         | planet        |",
		"+---------+---------------+",
		"|         | second        |",
		"| Venus   | planet        |",
		"+---------+---------------+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	names := tabulate.Formats()
	assert.Len(t, names, 37)
	assert.Contains(t, names, "simple")
	assert.Contains(t, names, "grid")
	assert.Contains(t, names, "html")
	assert.True(t, sortedStrings(names))
}

func sortedStrings(names []string) bool {
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			return false
		}
	}
	return true
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	a, err := tabulate.ParseAlignment("decimal")
	require.NoError(t, err)
	assert.Equal(t, tabulate.AlignDecimal, a)
	assert.Equal(t, "decimal", a.String())

	_, err = tabulate.ParseAlignment("sideways")
	assert.Error(t, err)
}

func TestWriteAppendsNewline(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	err := tabulate.Write(&buf, [][]any{{"a"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, "a\n", buf.String())
}

func TestWriteDefaultFormatRules(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabulate.Write(&buf, [][]any{{"a"}}, tabulate.NewOptions())
	require.NoError(t, err)
	assert.Equal(t, "-\na\n-\n", buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "nope"
	err := tabulate.Write(&bytes.Buffer{}, [][]any{{"a"}}, opts)
	assert.ErrorIs(t, err, tabulate.ErrUnknownFormat)
}

// --- Adapter types ---

type planet struct {
	name   string
	radius int
}

func (p planet) Row() []any       { return []any{p.name, p.radius} }
func (p planet) Header() []string { return []string{"planet", "radius"} }

func TestRenderItems(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "psql"
	got, err := tabulate.RenderItems([]planet{
		{name: "Mercury", radius: 2440},
		{name: "Venus", radius: 6052},
	}, opts)
	require.NoError(t, err)
	want := strings.Join([]string{
		"+----------+----------+",
		"| planet   |   radius |",
		"|----------+----------|",
		"| Mercury  |     2440 |",
		"| Venus    |     6052 |",
		"+----------+----------+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderMaps(t *testing.T) {
	t.Parallel()
	opts := tabulate.NewOptions()
	opts.TableFormat = "plain"
	opts.Headers = tabulate.KeysHeaders
	got, err := tabulate.RenderMaps([]map[string]any{
		{"name": "Alice", "age": 30},
		{"name": "Bob"},
	}, opts)
	require.NoError(t, err)
	want := strings.Join([]string{
		"  age  name",
		"   30  Alice",
		"       Bob",
	}, "\n")
	assert.Equal(t, want, got)
}
