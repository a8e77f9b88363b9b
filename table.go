package textview

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// writeText writes the depth-first flattening of src as an aligned text
// table, indenting the first column two spaces per level.
func writeText(w io.Writer, src Source, cfg Config) error {
	cols := max(src.ColumnCount(Root), 0)

	var header []string
	if cfg.ColumnHeaders {
		header = columnHeaders(src, cols)
		if cfg.RowHeaders {
			header = append([]string{cfg.TopLeftHeader}, header...)
		}
	}

	n, _, err := counts(src, Root)
	if err != nil {
		return err
	}
	var rows [][]string
	if n == 0 {
		rows = append(rows, []string{cfg.EmptyPlaceholder})
	} else {
		collector := &textRowCollector{src: src, cfg: cfg}
		budget := &Budget{Max: cfg.MaxRows}
		if err := walk(src, Root, 0, collector, budget); err != nil {
			return err
		}
		rows = collector.rows
		if budget.Truncated {
			rows = append(rows, []string{cfg.EllipsisPlaceholder})
		}
	}

	widths := computeWidths(colCount(header, rows), header, rows)
	if cfg.Border == BorderNone {
		return renderPlainTable(w, header, rows, widths)
	}
	bc, ok := borderSets[cfg.Border]
	if !ok {
		return fmt.Errorf("%w: border style %s", ErrInvalidConfig, cfg.Border)
	}
	return renderBorderedTable(w, bc, header, rows, widths)
}

// textRowCollector gathers the cells of every visited row.
type textRowCollector struct {
	src  Source
	cfg  Config
	rows [][]string
	cur  []string
}

func (c *textRowCollector) BeginRow(_ Node, row, depth int) error {
	c.cur = nil
	if c.cfg.RowHeaders {
		c.cur = append(c.cur, rowHeader(c.src, row, depth))
	}
	return nil
}

func (c *textRowCollector) Cell(parent Node, row, column, depth int) error {
	text := c.src.Data(c.src.Index(row, column, parent))
	if column == 0 {
		text = strings.Repeat("  ", depth) + text
	}
	c.cur = append(c.cur, text)
	return nil
}

func (c *textRowCollector) EndRow(Node, int, int) error {
	c.rows = append(c.rows, c.cur)
	return nil
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int) error {
	if len(header) > 0 {
		if err := writePlainRow(w, header, widths); err != nil {
			return err
		}
		if err := writePlainSep(w, widths); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padCell(cell, width)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, bc borderChars, header []string, rows [][]string, widths []int) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := drawBorderedRow(w, header, widths, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(padCell(cell, width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
