package textview

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Model is an in-memory [Source]. It also implements [RoleSource],
// [HeaderRoleSource] and [Notifier].
//
// Mutate the exported fields or use the builder methods, then call
// [Model.Changed] to notify subscribers. Children hang off the first column
// of their parent row.
type Model struct {
	Headers     []string          `yaml:"headers"`
	RowHeaders  []string          `yaml:"row_headers"`
	HeaderAttrs []map[Role]string `yaml:"header_attrs"`
	Rows        []*Item           `yaml:"rows"`

	mu        sync.Mutex
	listeners []*listener
}

// Item is one row of a [Model].
type Item struct {
	Values   []string          `yaml:"values"`
	Attrs    []map[Role]string `yaml:"attrs"`
	Children []*Item           `yaml:"children"`
}

type listener struct {
	fn func()
}

// modelNode addresses one cell. A zero modelNode is an invalid index: it
// has no data and no children.
type modelNode struct {
	item   *Item
	column int
}

// NewModel returns an empty model with the given column headers.
func NewModel(headers ...string) *Model {
	return &Model{Headers: headers}
}

// LoadModel decodes a YAML or JSON model document. An empty document yields
// an empty model.
func LoadModel(r io.Reader) (*Model, error) {
	m := &Model{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: decode model: %s", ErrDataSource, err)
	}
	return m, nil
}

// AppendRow adds a top-level row and returns it.
func (m *Model) AppendRow(values ...string) *Item {
	it := &Item{Values: values}
	m.Rows = append(m.Rows, it)
	return it
}

// SetHeaderAttr sets a role attribute of a column header.
func (m *Model) SetHeaderAttr(column int, role Role, value string) {
	m.HeaderAttrs = setAttr(m.HeaderAttrs, column, role, value)
}

// AppendChild adds a child row and returns it.
func (it *Item) AppendChild(values ...string) *Item {
	child := &Item{Values: values}
	it.Children = append(it.Children, child)
	return child
}

// SetAttr sets a role attribute of one cell and returns the item.
func (it *Item) SetAttr(column int, role Role, value string) *Item {
	it.Attrs = setAttr(it.Attrs, column, role, value)
	return it
}

func setAttr(attrs []map[Role]string, column int, role Role, value string) []map[Role]string {
	for len(attrs) <= column {
		attrs = append(attrs, nil)
	}
	if attrs[column] == nil {
		attrs[column] = make(map[Role]string)
	}
	attrs[column][role] = value
	return attrs
}

// OnChanged subscribes fn to change notifications.
func (m *Model) OnChanged(fn func()) (cancel func()) {
	l := &listener{fn: fn}
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, other := range m.listeners {
			if other == l {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Changed notifies subscribers in subscription order.
func (m *Model) Changed() {
	m.mu.Lock()
	ls := make([]*listener, len(m.listeners))
	copy(ls, m.listeners)
	m.mu.Unlock()
	for _, l := range ls {
		l.fn()
	}
}

func (m *Model) children(parent Node) []*Item {
	if parent == nil {
		return m.Rows
	}
	n, ok := parent.(modelNode)
	if !ok || n.item == nil || n.column != 0 {
		return nil
	}
	return n.item.Children
}

// RowCount implements [Source].
func (m *Model) RowCount(parent Node) int {
	return len(m.children(parent))
}

// ColumnCount implements [Source]. It is the number of headers, or the
// widest row under parent when there are none.
func (m *Model) ColumnCount(parent Node) int {
	if len(m.Headers) > 0 {
		return len(m.Headers)
	}
	n := 0
	for _, it := range m.children(parent) {
		n = max(n, len(it.Values))
	}
	return n
}

// Index implements [Source].
func (m *Model) Index(row, column int, parent Node) Node {
	items := m.children(parent)
	if row < 0 || row >= len(items) || column < 0 {
		return modelNode{}
	}
	return modelNode{item: items[row], column: column}
}

// Data implements [Source].
func (m *Model) Data(node Node) string {
	n, ok := node.(modelNode)
	if !ok || n.item == nil || n.column >= len(n.item.Values) {
		return ""
	}
	return n.item.Values[n.column]
}

// HeaderData implements [Source].
func (m *Model) HeaderData(axis Axis, section int) string {
	headers := m.Headers
	if axis == Vertical {
		headers = m.RowHeaders
	}
	if section < 0 || section >= len(headers) {
		return ""
	}
	return headers[section]
}

// RoleData implements [RoleSource].
func (m *Model) RoleData(node Node, role Role) (string, bool) {
	n, ok := node.(modelNode)
	if !ok || n.item == nil {
		return "", false
	}
	return lookupAttr(n.item.Attrs, n.column, role)
}

// HeaderRoleData implements [HeaderRoleSource]. Only column headers carry
// attributes.
func (m *Model) HeaderRoleData(axis Axis, section int, role Role) (string, bool) {
	if axis != Horizontal {
		return "", false
	}
	return lookupAttr(m.HeaderAttrs, section, role)
}

func lookupAttr(attrs []map[Role]string, column int, role Role) (string, bool) {
	if column < 0 || column >= len(attrs) {
		return "", false
	}
	v, ok := attrs[column][role]
	return v, ok
}
