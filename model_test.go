package textview_test

import (
	"strings"
	"testing"

	"github.com/bjaus/textview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelYAML = `
headers: [Name, Count]
row_headers: [one, two]
header_attrs:
  - {pre: "^"}
rows:
  - values: [a, "1"]
    attrs:
      - {link: /a}
    children:
      - values: [a1, "2"]
  - values: [b, "3"]
`

func TestLoadModelYAML(t *testing.T) {
	t.Parallel()
	m, err := textview.LoadModel(strings.NewReader(modelYAML))
	require.NoError(t, err)

	assert.Equal(t, "Name;Count\na;1\n a1;2\nb;3\n",
		marshal(t, textview.CSVTree, m, textview.DefaultConfig(textview.CSVTree)))

	link, ok := m.RoleData(m.Index(0, 0, textview.Root), "link")
	assert.True(t, ok)
	assert.Equal(t, "/a", link)

	pre, ok := m.HeaderRoleData(textview.Horizontal, 0, "pre")
	assert.True(t, ok)
	assert.Equal(t, "^", pre)

	assert.Equal(t, "two", m.HeaderData(textview.Vertical, 1))
}

func TestLoadModelJSON(t *testing.T) {
	t.Parallel()
	m, err := textview.LoadModel(strings.NewReader(`{"headers":["X"],"rows":[{"values":["y"]},{"values":["z"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, "y z", marshal(t, textview.HTMLInline, m, textview.DefaultConfig(textview.HTMLInline)))
}

func TestLoadModelEmpty(t *testing.T) {
	t.Parallel()
	m, err := textview.LoadModel(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.RowCount(textview.Root))
	assert.Equal(t, "(empty)", marshal(t, textview.HTMLInline, m, textview.DefaultConfig(textview.HTMLInline)))
}

func TestLoadModelMalformed(t *testing.T) {
	t.Parallel()
	_, err := textview.LoadModel(strings.NewReader("rows: {"))
	assert.ErrorIs(t, err, textview.ErrDataSource)
}

func TestModelIndexing(t *testing.T) {
	t.Parallel()
	m := treeModel()

	src := m.Index(0, 0, textview.Root)
	assert.Equal(t, "src", m.Data(src))
	assert.Equal(t, 2, m.RowCount(src))
	assert.Equal(t, "util", m.Data(m.Index(1, 0, src)))

	// Only the first column carries children.
	assert.Equal(t, 0, m.RowCount(m.Index(0, 1, textview.Root)))

	tests := map[string]struct {
		row, column int
	}{
		"row past end":    {row: 5, column: 0},
		"negative row":    {row: -1, column: 0},
		"negative column": {row: 0, column: -1},
		"column past end": {row: 0, column: 9},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			node := m.Index(tt.row, tt.column, textview.Root)
			assert.Empty(t, m.Data(node))
			assert.Equal(t, 0, m.RowCount(node))
			_, ok := m.RoleData(node, "link")
			assert.False(t, ok)
		})
	}
}

func TestModelColumnCount(t *testing.T) {
	t.Parallel()
	m := textview.NewModel()
	m.AppendRow("a")
	m.AppendRow("b", "c", "d")
	assert.Equal(t, 3, m.ColumnCount(textview.Root))

	m.Headers = []string{"One", "Two"}
	assert.Equal(t, 2, m.ColumnCount(textview.Root))
}

func TestModelHeaderData(t *testing.T) {
	t.Parallel()
	m := treeModel()
	assert.Equal(t, "Size", m.HeaderData(textview.Horizontal, 1))
	assert.Equal(t, "r1", m.HeaderData(textview.Vertical, 0))
	assert.Empty(t, m.HeaderData(textview.Horizontal, 7))
	assert.Empty(t, m.HeaderData(textview.Vertical, -1))

	_, ok := m.HeaderRoleData(textview.Vertical, 0, "pre")
	assert.False(t, ok)
}

func TestModelNotifications(t *testing.T) {
	t.Parallel()
	m := flatModel()
	var calls []string
	cancelA := m.OnChanged(func() { calls = append(calls, "a") })
	m.OnChanged(func() { calls = append(calls, "b") })

	m.Changed()
	assert.Equal(t, []string{"a", "b"}, calls)

	cancelA()
	cancelA()
	m.Changed()
	assert.Equal(t, []string{"a", "b", "b"}, calls)
}
