package textview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDataSource        = errors.New("data source error")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Format represents an output format.
type Format string

const (
	CSVFlat    Format = "csv"
	CSVTree    Format = "csv-tree"
	HTMLList   Format = "html-list"
	HTMLInline Format = "html-inline"
	HTMLTable  Format = "html-table"
	Text       Format = "text"
)

var formats = []Format{CSVFlat, CSVTree, HTMLList, HTMLInline, HTMLTable, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write serializes src in format f and writes it to w. A nil source writes
// nothing.
func Write(w io.Writer, f Format, src Source, cfg Config) error {
	if src == nil {
		if _, err := ParseFormat(string(f)); err != nil {
			return err
		}
		return nil
	}
	switch f {
	case CSVFlat:
		return writeCSVFlat(w, src, cfg)
	case CSVTree:
		return writeCSVTree(w, src, cfg)
	case HTMLList:
		return writeHTMLList(w, src, cfg)
	case HTMLInline:
		return writeHTMLInline(w, src, cfg)
	case HTMLTable:
		return writeHTMLTable(w, src, cfg)
	case Text:
		return writeText(w, src, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal serializes src in format f and returns the bytes. Nothing is
// returned on failure, so callers never see partially built output.
func Marshal(f Format, src Source, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, src, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
