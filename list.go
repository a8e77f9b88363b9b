package textview

import (
	"fmt"
	"io"
)

// writeHTMLList writes one <li> per row with the children of a row nested
// in a <ul> inside its <li>.
func writeHTMLList(w io.Writer, src Source, cfg Config) error {
	return writeListLevel(w, src, cfg, Root, 0)
}

func writeListLevel(w io.Writer, src Source, cfg Config, parent Node, depth int) error {
	if _, err := io.WriteString(w, "<ul>"); err != nil {
		return err
	}
	err := walkRows(src, parent, func(row int) error {
		if _, err := fmt.Fprintf(w, "<li>%s", src.Data(src.Index(row, cfg.DisplayedColumn, parent))); err != nil {
			return err
		}
		child := src.Index(row, 0, parent)
		if n := src.RowCount(child); n > 0 {
			if depth >= MaxDepth {
				return fmt.Errorf("%w: cycle or excessive depth suspected", ErrDataSource)
			}
			if err := writeListLevel(w, src, cfg, child, depth+1); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</li>")
		return err
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "</ul>")
	return err
}
