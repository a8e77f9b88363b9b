package textview

import "fmt"

// MaxDepth bounds the nesting a walk descends into. A source deeper than
// this is treated as cyclic.
const MaxDepth = 256

// Visitor receives the rows of a depth-first walk. Cell is called once per
// column between BeginRow and EndRow. Returning an error stops the walk.
type Visitor interface {
	BeginRow(parent Node, row, depth int) error
	Cell(parent Node, row, column, depth int) error
	EndRow(parent Node, row, depth int) error
}

// Budget caps the number of rows a walk emits across all depths. A nil
// *Budget is unlimited.
type Budget struct {
	Max       int
	Count     int
	Truncated bool
}

// take reserves one row. It reports false, and marks the budget truncated,
// when the cap has already been reached.
func (b *Budget) take() bool {
	if b == nil || b.Max <= 0 {
		return true
	}
	if b.Count >= b.Max {
		b.Truncated = true
		return false
	}
	b.Count++
	return true
}

// walk visits the rows under parent in pre-order: each row, then its
// children, then the next sibling.
func walk(src Source, parent Node, depth int, v Visitor, b *Budget) error {
	rows, cols, err := counts(src, parent)
	if err != nil {
		return err
	}
	if rows > 0 && depth > MaxDepth {
		return fmt.Errorf("%w: cycle or excessive depth suspected", ErrDataSource)
	}
	for row := range rows {
		if !b.take() {
			return nil
		}
		if err := v.BeginRow(parent, row, depth); err != nil {
			return err
		}
		for col := range cols {
			if err := v.Cell(parent, row, col, depth); err != nil {
				return err
			}
		}
		if err := v.EndRow(parent, row, depth); err != nil {
			return err
		}
		if err := walk(src, src.Index(row, 0, parent), depth+1, v, b); err != nil {
			return err
		}
		if b != nil && b.Truncated {
			return nil
		}
	}
	return nil
}

func counts(src Source, parent Node) (rows, cols int, err error) {
	rows = src.RowCount(parent)
	cols = src.ColumnCount(parent)
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("%w: negative count (rows %d, columns %d)", ErrDataSource, rows, cols)
	}
	return rows, cols, nil
}

// walkRows visits only the rows directly under parent.
func walkRows(src Source, parent Node, fn func(row int) error) error {
	rows, _, err := counts(src, parent)
	if err != nil {
		return err
	}
	for row := range rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}
