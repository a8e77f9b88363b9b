package textview

import (
	"fmt"
	"io"
	"strings"
)

// writeHTMLTable writes the depth-first flattening of src as an HTML table.
// Cell and header text is written verbatim: sources supply markup-safe or
// intentionally raw HTML.
func writeHTMLTable(w io.Writer, src Source, cfg Config) error {
	cols := max(src.ColumnCount(Root), 0)
	span := cols
	if cfg.RowHeaders {
		span++
	}
	span = max(span, 1)

	if _, err := fmt.Fprintf(w, "<table%s>\n", classAttr(cfg.TableClass)); err != nil {
		return err
	}

	if cfg.ColumnHeaders {
		var sb strings.Builder
		sb.WriteString("<tr>")
		if cfg.RowHeaders {
			fmt.Fprintf(&sb, "<th>%s</th>", cfg.TopLeftHeader)
		}
		for col := range cols {
			prefix, _ := headerRole(src, Horizontal, col, cfg.HTMLPrefixRole)
			fmt.Fprintf(&sb, "<th>%s%s</th>", prefix, src.HeaderData(Horizontal, col))
		}
		sb.WriteString("</tr>")
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	rows, _, err := counts(src, Root)
	if err != nil {
		return err
	}
	if rows == 0 {
		if err := writeSpanRow(w, span, cfg.EmptyPlaceholder); err != nil {
			return err
		}
	} else {
		budget := &Budget{Max: cfg.MaxRows}
		if err := walk(src, Root, 0, &htmlTableVisitor{w: w, src: src, cfg: cfg}, budget); err != nil {
			return err
		}
		if budget.Truncated {
			if err := writeSpanRow(w, span, cfg.EllipsisPlaceholder); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintln(w, "</table>")
	return err
}

// htmlTableVisitor writes one <tr> per visited row.
type htmlTableVisitor struct {
	w   io.Writer
	src Source
	cfg Config
	sb  strings.Builder
}

func (v *htmlTableVisitor) BeginRow(parent Node, row, depth int) error {
	v.sb.Reset()
	rowClass, _ := cellRole(v.src, v.src.Index(row, 0, parent), v.cfg.RowClassRole)
	fmt.Fprintf(&v.sb, "<tr%s>", classAttr(rowClass))
	if v.cfg.RowHeaders {
		var prefix string
		if depth == 0 {
			prefix, _ = headerRole(v.src, Vertical, row, v.cfg.HTMLPrefixRole)
		}
		fmt.Fprintf(&v.sb, "<th>%s%s</th>", prefix, rowHeader(v.src, row, depth))
	}
	return nil
}

func (v *htmlTableVisitor) Cell(parent Node, row, column, depth int) error {
	node := v.src.Index(row, column, parent)
	cellClass, _ := cellRole(v.src, node, v.cfg.CellClassRole)
	fmt.Fprintf(&v.sb, "<td%s>", classAttr(cellClass))
	if column == 0 {
		v.sb.WriteString(strings.Repeat("&nbsp;&nbsp;", depth))
	}
	if prefix, ok := cellRole(v.src, node, v.cfg.HTMLPrefixRole); ok {
		v.sb.WriteString(prefix)
	}
	text := v.src.Data(node)
	if link, ok := cellRole(v.src, node, v.cfg.LinkRole); ok {
		linkClass, _ := cellRole(v.src, node, v.cfg.LinkClassRole)
		fmt.Fprintf(&v.sb, `<a href="%s"%s>%s</a>`, link, classAttr(linkClass), text)
	} else {
		v.sb.WriteString(text)
	}
	v.sb.WriteString("</td>")
	return nil
}

func (v *htmlTableVisitor) EndRow(Node, int, int) error {
	v.sb.WriteString("</tr>")
	_, err := fmt.Fprintln(v.w, v.sb.String())
	return err
}

func writeSpanRow(w io.Writer, span int, text string) error {
	_, err := fmt.Fprintf(w, "<tr><td colspan=\"%d\">%s</td></tr>\n", span, text)
	return err
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, class)
}
