// SPDX-License-Identifier: MIT

package brolz

import "log/slog"

// Engine is the per-stream façade gluing the match engine's pieces
// together: it owns a Window, a Generator (hash table + dictionary index +
// distance cache), and the resolved Options for one compression stream.
// The hash table is created once per stream, cleared at start, and updated
// in place by Store.
//
// Logging is optional and at Debug level only; a nil logger is silent,
// matching the "options may be nil" convention in options.go.
type Engine struct {
	opts *Options
	gen  *Generator
	log  *slog.Logger
}

// NewEngine constructs an Engine for opts (nil means DefaultOptions). It
// does not validate opts and never fails, so the "construct once, call
// Process many times" pattern stays simple; each Process call validates
// the options and returns any validation error.
func NewEngine(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Engine{opts: opts}
}

// WithLogger attaches a debug-level trace logger and returns the Engine for
// chaining. A nil logger (the default) disables tracing entirely.
func (e *Engine) WithLogger(logger *slog.Logger) *Engine {
	e.log = logger
	return e
}

// Process runs the match engine over the full contents of data and returns
// the resulting command stream. This is a one-shot
// entry point: a fresh Window and Generator are created per call, sized to
// hold all of data without wraparound (see NewWindowForInput); callers
// that want to carry a Generator's distance cache and hash table across
// multiple Process-sized blocks should use NewGenerator and Generator.Generate
// directly instead.
func (e *Engine) Process(data []byte) ([]Command, error) {
	if err := e.opts.validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	gen, err := NewGenerator(e.opts.Quality, e.opts.LgWin, e.opts.LgBlock)
	if err != nil {
		return nil, err
	}
	if e.gen != nil {
		e.gen.Release()
	}
	e.gen = gen

	win := NewWindowForInput(e.opts.LgWin, len(data))
	win.Append(data)

	if e.log != nil {
		e.log.Debug("brolz: starting match engine",
			"quality", e.opts.Quality, "lgwin", e.opts.LgWin,
			"input_len", len(data), "window_bytes", len(win.Bytes()))
	}

	var commands []Command
	commands = gen.Generate(win.Bytes(), win.Mask(), 0, len(data), commands)

	// Close the stream with a trailing insert-only command: copy_len == 0
	// on the final command signals the tail literal run.
	commands = append(commands, Command{InsertLen: int(gen.InsertLen), CopyLen: 0})
	gen.InsertLen = 0

	if e.log != nil {
		e.log.Debug("brolz: finished match engine", "commands", len(commands))
	}

	return commands, nil
}

// Close releases the Engine's pooled HashTable, if any, back to the shared
// pool. Safe to call multiple times or on an Engine that never ran Process.
func (e *Engine) Close() {
	if e.gen != nil {
		e.gen.Release()
	}
}

// DistanceCacheSnapshot returns the four carried distances after the most
// recent Process call, for callers seeding a subsequent stream. It returns
// the zero value if Process has not been called yet.
func (e *Engine) DistanceCacheSnapshot() (d0, d1, d2, d3 int64) {
	if e.gen == nil {
		return 0, 0, 0, 0
	}
	c := e.gen.Cache.dist
	return c[0], c[1], c[2], c[3]
}
