package textview

import (
	"io"
	"strings"
)

// writeHTMLInline writes the displayed column of the top-level rows as one
// run. Nested rows are not visited.
func writeHTMLInline(w io.Writer, src Source, cfg Config) error {
	var items []string
	err := walkRows(src, Root, func(row int) error {
		node := src.Index(row, cfg.DisplayedColumn, Root)
		prefix, _ := cellRole(src, node, cfg.HTMLPrefixRole)
		items = append(items, prefix+src.Data(node))
		return nil
	})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		_, err = io.WriteString(w, cfg.EmptyPlaceholder)
		return err
	}
	_, err = io.WriteString(w, cfg.Prefix+strings.Join(items, cfg.Separator))
	return err
}
