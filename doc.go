// Package textview renders hierarchical tabular data as plain text or HTML.
//
// A [Source] is a read-only tree of rows and columns: every row may have
// child rows, addressed through the node of its first column. The package
// serializes a Source in several formats and keeps a rendered copy up to
// date through a [View].
//
// # Interface Design
//
// As with the formats, a minimal interface unlocks rendering and optional
// interfaces enhance it:
//
//   - [Source] → every format
//   - [RoleSource] → per-cell decoration (links, CSS classes, HTML prefixes)
//   - [HeaderRoleSource] → HTML prefixes on column headers
//   - [Notifier] → automatic re-render in a [View]
//
// [Model] is an in-memory Source implementing all of them. [LoadModel]
// reads one from YAML or JSON.
//
// # Formats
//
//   - [CSVFlat] — header line plus one line per top-level row
//   - [CSVTree] — header line plus one line per row at any depth, the first
//     cell indented one space per level
//   - [HTMLInline] — the displayed column of the top-level rows as one run
//   - [HTMLList] — nested <ul>/<li> lists
//   - [HTMLTable] — a <table> of every row in depth-first order, with
//     decoration and a row cap
//   - [Text] — an aligned text table of every row in depth-first order
//
// [Write] and [Marshal] render a Source once:
//
//	out, err := textview.Marshal(textview.CSVFlat, model, textview.DefaultConfig(textview.CSVFlat))
//
// # Configuration
//
// [Config] holds every rendering option. [DefaultConfig] returns the
// defaults of a format and [LoadConfig] overlays a YAML document on them.
// Options include header toggles, the empty and ellipsis placeholders, the
// row cap of the table formats ([Config.MaxRows]) and the [Role] names used
// for decoration. Unset roles are ignored.
//
// # Raw HTML
//
// The HTML formats never escape. Cell text, header text and role values are
// written verbatim so sources can embed markup; a source holding untrusted
// text must escape it itself.
//
// # Coalesced Updates
//
// A [View] renders on a cooperative scheduler ([Poster], implemented by
// [Queue]). [View.RequestUpdate] schedules a render only when none is
// pending, so any number of change notifications between two turns cost a
// single render. The rendered string is published atomically and read with
// [View.Text]:
//
//	q := textview.NewQueue()
//	v := textview.NewView(q, textview.HTMLTable)
//	v.SetSource(model)
//	model.Changed()
//	q.RunPending() // one render
//	fmt.Println(v.Text())
//
// A failed render keeps the previous text; [View.Err] reports the failure.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrDataSource] — negative counts, or nesting deeper than [MaxDepth]
//   - [ErrInvalidConfig] — undecodable or invalid configuration
package textview
