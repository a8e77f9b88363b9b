package textview

// Node addresses one cell of a [Source]. Its concrete type belongs to the
// source; the serializers only pass it back. [Root] addresses the invisible
// parent of the top-level rows.
type Node any

// Root is the parent of the top-level rows.
var Root Node

// Axis selects the header orientation.
type Axis int

const (
	Horizontal Axis = iota // column headers
	Vertical               // row headers
)

// Role names an optional attribute of a cell or header beyond its display
// text, such as a link target or a CSS class. The empty role is unset.
type Role string

// --- Core Interface ---

// Source is a read-only hierarchical table. Every format requires it.
//
// Children of a row are addressed through the node of its first column:
// RowCount(Index(row, 0, parent)) is the number of child rows. A source must
// be finite and acyclic.
type Source interface {
	RowCount(parent Node) int
	ColumnCount(parent Node) int
	Index(row, column int, parent Node) Node
	Data(node Node) string
	HeaderData(axis Axis, section int) string
}

// --- Optional Interfaces ---

// RoleSource provides role-valued cell attributes used for decoration.
// Without it, every role lookup reports the attribute as absent.
type RoleSource interface {
	RoleData(node Node, role Role) (string, bool)
}

// HeaderRoleSource provides role-valued header attributes.
type HeaderRoleSource interface {
	HeaderRoleData(axis Axis, section int, role Role) (string, bool)
}

// Notifier reports data changes. The returned function cancels the
// subscription.
type Notifier interface {
	OnChanged(fn func()) (cancel func())
}

func cellRole(src Source, node Node, role Role) (string, bool) {
	if role == "" {
		return "", false
	}
	rs, ok := src.(RoleSource)
	if !ok {
		return "", false
	}
	return rs.RoleData(node, role)
}

func headerRole(src Source, axis Axis, section int, role Role) (string, bool) {
	if role == "" {
		return "", false
	}
	hs, ok := src.(HeaderRoleSource)
	if !ok {
		return "", false
	}
	return hs.HeaderRoleData(axis, section, role)
}
