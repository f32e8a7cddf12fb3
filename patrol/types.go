// Package patrol defines options and sentinel errors for guard-walk
// simulation over a grid.Grid.
package patrol

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for patrol simulation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrMissingStart is returned when neither the options nor the
	// grid markers provide a start position.
	ErrMissingStart = errors.New("patrol: start not provided and not marked on grid")

	// ErrStartBlocked is returned when the start cell is a wall,
	// an obstacle, or out of bounds.
	ErrStartBlocked = errors.New("patrol: start position not walkable")

	// ErrLooping is returned by Route when the patrol never leaves the
	// grid: a cycling guard has no finite trace.
	ErrLooping = errors.New("patrol: route never exits the grid")
)

// Option configures simulation behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing Route, Loops, and
// CountLoopingObstacles.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start overrides the grid's start marker.
	Start grid.Position

	// Facing is the guard's initial orientation.
	Facing grid.Direction

	// Obstacles is an extra blocked set layered over the grid's walls.
	// The simulation reads it and never writes it: trial obstacles are
	// managed on a private copy, so the caller's set is unchanged
	// across (and after) every trial.
	Obstacles map[grid.Position]struct{}

	hasStart bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - start taken from the grid's start marker
//   - Facing grid.Up (guards are drawn looking up)
//   - no extra obstacles.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Facing: grid.Up,
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

// WithStart sets the guard's starting cell, overriding the grid marker.
func WithStart(p grid.Position) Option {
	return func(o *Options) {
		o.Start = p
		o.hasStart = true
	}
}

// WithFacing sets the guard's initial orientation.
func WithFacing(d grid.Direction) Option {
	return func(o *Options) {
		o.Facing = d
	}
}

// WithObstacles layers an extra blocked set over the grid's walls.
// Callers retain ownership; the map is never mutated.
func WithObstacles(blocked map[grid.Position]struct{}) Option {
	return func(o *Options) {
		o.Obstacles = blocked
	}
}
