// Package engine wires the board, move generator, evaluator and search
// together behind the small surface a protocol front-end drives: set a
// position, poll for the engine's chosen move, and snapshot the result.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates a single position and the fixed-depth search used to
// choose a move from it. Not safe for concurrent use beyond the
// serialization its own mutex provides: SetPosition keeps the caller's board
// without copying it, so callers must not mutate that board while a Poll is
// in flight.
type Engine struct {
	name, author string
	depth        lang.Optional[int]

	search *search.Search
	b      *board.Board

	mu sync.Mutex
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxDepth overrides the default search depth (6 ply).
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.depth = lang.Some(depth)
	}
}

// WithAuthor records an author string, surfaced by Author.
func WithAuthor(author string) Option {
	return func(e *Engine) {
		e.author = author
	}
}

// New constructs an Engine at the standard starting position with a search
// depth of 6 ply unless overridden by WithMaxDepth.
func New(ctx context.Context, name string, opts ...Option) *Engine {
	e := &Engine{
		name: name,
		b:    board.NewStartingBoard(),
	}
	for _, fn := range opts {
		fn(e)
	}

	depth := search.DefaultMaxDepth
	if v, ok := e.depth.V(); ok {
		depth = v
	}
	e.search = search.New(depth)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the configured author, if any.
func (e *Engine) Author() string {
	return e.author
}

// SetPosition replaces the engine's board.
func (e *Engine) SetPosition(ctx context.Context, b *board.Board) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.b = b
	logw.Infof(ctx, "Set position: %v", e.b)
}

// GetPosition returns a snapshot of the engine's current board. Mutating the
// returned board does not affect the engine.
func (e *Engine) GetPosition() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Clone()
}

// Start is a no-op in this synchronous engine; present so an asynchronous
// implementation can be swapped in without changing the interface.
func (e *Engine) Start() {
	e.search.Start()
}

// Stop is advisory and has no effect on the synchronous search Poll runs.
func (e *Engine) Stop() {
	e.search.Stop()
}

// Poll runs the search to completion against the current position and
// writes the result to out. Returns false iff the side to move has no
// legal moves (checkmate or stalemate).
func (e *Engine) Poll(ctx context.Context, out *search.Evaluation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok := e.search.Poll(e.b, out)
	if ok {
		logw.Infof(ctx, "Poll %v: best=%v eval=%v nodes=%v", e.b, out.Best, out.Eval, out.Total)
	} else {
		logw.Infof(ctx, "Poll %v: no legal moves", e.b)
	}
	return ok
}
