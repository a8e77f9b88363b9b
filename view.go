package textview

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Option configures a [View].
type Option func(*View)

// WithConfig sets the initial render configuration. Without it the view
// uses [DefaultConfig] for its format.
func WithConfig(cfg Config) Option {
	return func(v *View) {
		v.cfg = cfg
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// View keeps the rendered text of a [Source] up to date. Any number of
// update requests made between two turns of its [Poster] collapse into a
// single render.
//
// Text may be read from any goroutine. The other methods are meant to be
// called from the scheduler's goroutine but are safe for concurrent use.
type View struct {
	loop   Poster
	format Format
	logger *slog.Logger

	mu     sync.Mutex
	src    Source
	cancel func()
	cfg    Config
	err    error

	pending atomic.Bool
	text    atomic.Pointer[string]
	renders atomic.Uint64
}

// NewView returns a view rendering format f with renders scheduled on loop.
// It has no source until [View.SetSource] is called.
func NewView(loop Poster, f Format, opts ...Option) *View {
	v := &View{
		loop:   loop,
		format: f,
		logger: slog.Default(),
		cfg:    DefaultConfig(f),
	}
	for _, opt := range opts {
		opt(v)
	}
	empty := ""
	v.text.Store(&empty)
	return v
}

// Format returns the format the view renders.
func (v *View) Format() Format { return v.format }

// SetSource replaces the observed source. The view unsubscribes from the
// previous source, subscribes to src when it is a [Notifier], and requests
// an update. A nil source renders as the empty string.
func (v *View) SetSource(src Source) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.src = src
	if n, ok := src.(Notifier); ok {
		v.cancel = n.OnChanged(v.RequestUpdate)
	}
	v.mu.Unlock()
	v.RequestUpdate()
}

// Source returns the observed source.
func (v *View) Source() Source {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.src
}

// SetConfig replaces the render configuration and requests an update. The
// change is visible from the next render on.
func (v *View) SetConfig(cfg Config) {
	v.mu.Lock()
	v.cfg = cfg
	v.mu.Unlock()
	v.RequestUpdate()
}

// Config returns the render configuration.
func (v *View) Config() Config {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cfg
}

// RequestUpdate schedules a render unless one is already pending.
func (v *View) RequestUpdate() {
	if v.pending.CompareAndSwap(false, true) {
		v.loop.Post(v.render)
	}
}

// Pending reports whether a render is scheduled but has not run yet.
func (v *View) Pending() bool { return v.pending.Load() }

// Text returns the last successfully rendered text.
func (v *View) Text() string { return *v.text.Load() }

// Err returns the error of the last render, or nil if it succeeded.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Renders returns the number of completed renders.
func (v *View) Renders() uint64 { return v.renders.Load() }

func (v *View) render() {
	// Cleared first so a request made during the render schedules another.
	v.pending.Store(false)

	v.mu.Lock()
	src, cfg := v.src, v.cfg
	v.mu.Unlock()

	var buf bytes.Buffer
	err := Write(&buf, v.format, src, cfg)

	v.mu.Lock()
	v.err = err
	v.mu.Unlock()
	if err != nil {
		v.logger.Warn("render failed, keeping previous text", "format", v.format, "error", err)
		return
	}

	text := buf.String()
	v.text.Store(&text)
	n := v.renders.Add(1)
	v.logger.Debug("rendered", "format", v.format, "bytes", len(text), "renders", n)
}
