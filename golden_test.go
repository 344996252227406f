package tabulate_test

import (
	"os"
	"testing"

	"github.com/bjaus/tabulate"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	Name                string   `yaml:"name"`
	Format              string   `yaml:"format"`
	Headers             string   `yaml:"headers"`
	ColAlign            []string `yaml:"colalign"`
	RowAlign            string   `yaml:"rowalign"`
	ShowIndex           string   `yaml:"showindex"`
	MaxColWidths        []int    `yaml:"maxcolwidths"`
	MaxHeaderColWidth   int      `yaml:"maxheadercolwidth"`
	DisableNumParseCols []int    `yaml:"disable_numparse_columns"`
	Data                [][]any  `yaml:"data"`
	Output              string   `yaml:"output"`
}

type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

func (c goldenCase) options(t *testing.T) tabulate.Options {
	t.Helper()
	opts := tabulate.NewOptions()
	opts.TableFormat = c.Format

	switch c.Headers {
	case "", "none":
	case "firstrow":
		opts.Headers = tabulate.FirstRowHeaders
	case "keys":
		opts.Headers = tabulate.KeysHeaders
	default:
		t.Fatalf("unknown headers mode %q", c.Headers)
	}

	for _, name := range c.ColAlign {
		a, err := tabulate.ParseAlignment(name)
		require.NoError(t, err)
		opts.ColAlign = append(opts.ColAlign, a)
	}

	switch c.RowAlign {
	case "", "top":
	case "center":
		opts.RowAlign = tabulate.RowAlignCenter
	case "bottom":
		opts.RowAlign = tabulate.RowAlignBottom
	default:
		t.Fatalf("unknown rowalign %q", c.RowAlign)
	}

	switch c.ShowIndex {
	case "":
	case "always":
		opts.ShowIndex = tabulate.IndexAlways
	case "never":
		opts.ShowIndex = tabulate.IndexNever
	default:
		t.Fatalf("unknown showindex %q", c.ShowIndex)
	}

	opts.MaxColWidths = c.MaxColWidths
	opts.MaxHeaderColWidth = c.MaxHeaderColWidth
	opts.DisableNumParseColumns = c.DisableNumParseCols
	return opts
}

func TestGoldenOutputs(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/golden.yaml")
	require.NoError(t, err)

	var file goldenFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Cases)

	for _, tc := range file.Cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Render(tc.Data, tc.options(t))
			require.NoError(t, err)
			require.Equal(t, tc.Output, got)
		})
	}
}
