package textview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config controls how a source is rendered. Every field has a default, see
// [DefaultConfig]. A Config is a value: changing it affects only renders
// that are handed the new value.
type Config struct {
	// ColumnHeaders emits the column header row. Default: true.
	ColumnHeaders bool `yaml:"column_headers"`
	// RowHeaders emits a leading row header column. Default: false.
	RowHeaders bool `yaml:"row_headers"`
	// EmptyPlaceholder replaces the rows of a present source with no rows.
	EmptyPlaceholder string `yaml:"empty_placeholder"`
	// EllipsisPlaceholder marks output cut short by MaxRows.
	EllipsisPlaceholder string `yaml:"ellipsis_placeholder"`
	// MaxRows caps the rows of the table formats across all depths.
	// Zero or less disables the cap.
	MaxRows int `yaml:"max_rows"`
	// Separator joins cells (CSV) or items (inline set).
	Separator string `yaml:"separator"`
	// TopLeftHeader fills the corner cell when both header kinds are shown.
	TopLeftHeader string `yaml:"top_left_header"`
	// TableClass is the CSS class of the HTML table element.
	TableClass string `yaml:"table_class"`
	// Prefix is written once before an inline set.
	Prefix string `yaml:"prefix"`
	// DisplayedColumn is the column shown by the inline set and list formats.
	DisplayedColumn int `yaml:"displayed_column"`
	// Border is the text table border style. Default: BorderNone.
	Border BorderStyle `yaml:"border"`

	LinkRole       Role `yaml:"link_role"`
	LinkClassRole  Role `yaml:"link_class_role"`
	HTMLPrefixRole Role `yaml:"html_prefix_role"`
	RowClassRole   Role `yaml:"row_class_role"`
	CellClassRole  Role `yaml:"cell_class_role"`
}

// DefaultConfig returns the default configuration for format f.
func DefaultConfig(f Format) Config {
	cfg := Config{
		ColumnHeaders:       true,
		EmptyPlaceholder:    "(empty)",
		EllipsisPlaceholder: "...",
		Separator:           ";",
		Border:              BorderNone,
	}
	switch f {
	case HTMLInline:
		cfg.Separator = " "
	case HTMLTable, Text:
		cfg.MaxRows = 100
	}
	return cfg
}

// LoadConfig overlays the YAML document data on the defaults for format f.
// Keys missing from the document keep their default values.
func LoadConfig(f Format, data []byte) (Config, error) {
	cfg := DefaultConfig(f)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if cfg.DisplayedColumn < 0 {
		return Config{}, fmt.Errorf("%w: displayed_column %d is negative", ErrInvalidConfig, cfg.DisplayedColumn)
	}
	return cfg, nil
}

// BorderStyle controls text table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// String returns the border style name.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// UnmarshalYAML decodes a border style from its name.
func (b *BorderStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for style, n := range borderNames {
		if n == name {
			*b = style
			return nil
		}
	}
	return fmt.Errorf("unknown border style %q", name)
}

// MarshalYAML encodes a border style as its name.
func (b BorderStyle) MarshalYAML() (any, error) {
	return b.String(), nil
}
