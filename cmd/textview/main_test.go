package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const model = `
headers: [Name, Count]
rows:
  - values: [a, "1"]
    children:
      - values: [a1, "4"]
  - values: [b, "2"]
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cmdRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderDefaultFormat(t *testing.T) {
	out, err := run(t, "render", "--quiet", writeFile(t, "model.yaml", model))
	require.NoError(t, err)
	assert.Equal(t, "Name;Count\na;1\nb;2\n", out)
}

func TestRenderWithConfig(t *testing.T) {
	cfg := writeFile(t, "cfg.yaml", "column_headers: false\nseparator: \",\"\n")
	out, err := run(t, "render", "--quiet", "-f", "csv-tree", "-c", cfg, writeFile(t, "model.yaml", model))
	require.NoError(t, err)
	assert.Equal(t, "a,1\n a1,4\nb,2\n", out)
}

func TestRenderInlineAddsNewline(t *testing.T) {
	out, err := run(t, "render", "--quiet", "--format", "html-inline", writeFile(t, "model.yaml", model))
	require.NoError(t, err)
	assert.Equal(t, "a b\n", out)
}

func TestRenderErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"unknown format": {args: []string{"render", "--quiet", "-f", "xml", writeFile(t, "model.yaml", model)}},
		"missing model":  {args: []string{"render", "--quiet", filepath.Join(t.TempDir(), "nope.yaml")}},
		"bad config":     {args: []string{"render", "--quiet", "-c", writeFile(t, "cfg.yaml", "border: wavy"), writeFile(t, "model.yaml", model)}},
		"bad model":      {args: []string{"render", "--quiet", writeFile(t, "model.yaml", "rows: {")}},
		"no arguments":   {args: []string{"render", "--quiet"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Equal(t, "csv\ncsv-tree\nhtml-list\nhtml-inline\nhtml-table\ntext\n", out)
}
