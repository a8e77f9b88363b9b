package textview

import (
	"fmt"
	"io"
	"strings"
)

func writeCSVFlat(w io.Writer, src Source, cfg Config) error {
	cols := max(src.ColumnCount(Root), 0)
	if cfg.ColumnHeaders {
		if err := writeCSVLine(w, cfg.Separator, columnHeaders(src, cols)); err != nil {
			return err
		}
	}
	return walkRows(src, Root, func(row int) error {
		cells := make([]string, cols)
		for col := range cells {
			cells[col] = src.Data(src.Index(row, col, Root))
		}
		return writeCSVLine(w, cfg.Separator, cells)
	})
}

func writeCSVTree(w io.Writer, src Source, cfg Config) error {
	if cfg.ColumnHeaders {
		header := columnHeaders(src, max(src.ColumnCount(Root), 0))
		if cfg.RowHeaders {
			header = append([]string{cfg.TopLeftHeader}, header...)
		}
		if err := writeCSVLine(w, cfg.Separator, header); err != nil {
			return err
		}
	}
	return walk(src, Root, 0, &csvTreeVisitor{w: w, src: src, cfg: cfg}, nil)
}

// csvTreeVisitor buffers one row of cells and writes it as a line.
type csvTreeVisitor struct {
	w     io.Writer
	src   Source
	cfg   Config
	cells []string
}

func (v *csvTreeVisitor) BeginRow(_ Node, row, depth int) error {
	v.cells = v.cells[:0]
	if v.cfg.RowHeaders {
		v.cells = append(v.cells, rowHeader(v.src, row, depth))
	}
	return nil
}

func (v *csvTreeVisitor) Cell(parent Node, row, column, depth int) error {
	text := v.src.Data(v.src.Index(row, column, parent))
	if column == 0 {
		text = strings.Repeat(" ", depth) + text
	}
	v.cells = append(v.cells, text)
	return nil
}

func (v *csvTreeVisitor) EndRow(Node, int, int) error {
	return writeCSVLine(v.w, v.cfg.Separator, v.cells)
}

func writeCSVLine(w io.Writer, sep string, cells []string) error {
	_, err := fmt.Fprintln(w, strings.Join(cells, sep))
	return err
}

func columnHeaders(src Source, cols int) []string {
	header := make([]string, cols)
	for col := range header {
		header[col] = src.HeaderData(Horizontal, col)
	}
	return header
}

// rowHeader returns the vertical header of a top-level row. Nested rows
// have no header section of their own.
func rowHeader(src Source, row, depth int) string {
	if depth > 0 {
		return ""
	}
	return src.HeaderData(Vertical, row)
}
