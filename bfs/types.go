// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrMissingEndpoints is returned when neither the options nor the
	// grid markers provide a start (and, where required, a goal).
	ErrMissingEndpoints = errors.New("bfs: start/goal not provided and not marked on grid")

	// ErrStartBlocked is returned when the start cell is a wall,
	// an obstacle, or out of bounds.
	ErrStartBlocked = errors.New("bfs: start position not walkable")

	// ErrNoPath is returned when the goal is unreachable. Callers that
	// treat absence as a normal outcome should errors.Is against this.
	ErrNoPath = errors.New("bfs: no path to goal")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start overrides the grid's start marker.
	Start grid.Position

	// Goal overrides the grid's goal marker.
	Goal grid.Position

	// Obstacles is an extra blocked set layered over the grid's walls.
	// The grid itself is never mutated: re-querying after a single-cell
	// corruption means calling again with one more entry here.
	Obstacles map[grid.Position]struct{}

	// OnVisit is called when visiting a position at its BFS depth.
	// Returning a non-nil error aborts the search with that error.
	OnVisit func(pos grid.Position, depth int) error

	hasStart bool
	hasGoal  bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - endpoints taken from the grid's markers
//   - no extra obstacles
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Obstacles: nil,
		OnVisit:   func(grid.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart sets the search origin, overriding the grid's start marker.
func WithStart(p grid.Position) Option {
	return func(o *Options) {
		o.Start = p
		o.hasStart = true
	}
}

// WithGoal sets the search target, overriding the grid's goal marker.
func WithGoal(p grid.Position) Option {
	return func(o *Options) {
		o.Goal = p
		o.hasGoal = true
	}
}

// WithObstacles layers an extra blocked set over the grid's walls.
// The map is read, never written; callers retain ownership.
func WithObstacles(blocked map[grid.Position]struct{}) Option {
	return func(o *Options) {
		o.Obstacles = blocked
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(pos grid.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
