// Package dijkstra defines core types, configuration options, and
// sentinel errors for turn-aware shortest-path search on a grid.Grid.
//
// The unit of visitation is a State: a position plus the direction the
// walker is facing when it arrives there. Cost depends on facing, so two
// arrivals at the same cell from different directions are distinct
// states with independent best-known costs.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrMissingEndpoints indicates that neither the options nor the
	// grid markers provide both a start and a goal.
	ErrMissingEndpoints = errors.New("dijkstra: start/goal not provided and not marked on grid")

	// ErrStartBlocked indicates the start cell is a wall or out of bounds.
	ErrStartBlocked = errors.New("dijkstra: start position not walkable")

	// ErrNoPath indicates the goal is unreachable at any cost.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadTurnPenalty indicates a negative turn penalty was supplied;
	// Dijkstra requires non-negative weights for first-pop optimality.
	ErrBadTurnPenalty = errors.New("dijkstra: turn penalty must be non-negative")
)

// State is the visitation unit of the search: a position plus the
// facing direction on arrival. Value type, map-key safe.
type State struct {
	Pos grid.Position
	Dir grid.Direction
}

// DefaultTurnPenalty is the cost of changing facing between two
// consecutive steps. A point turn costs the same regardless of degree:
// only "continue straight" versus "any turn" is distinguished.
const DefaultTurnPenalty int64 = 1000

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. negative penalty) is recorded internally and
// surfaced as its sentinel error when the search is invoked.
type Option func(*Options)

// Options holds parameters customizing MinCost and BestPathCells.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start overrides the grid's start marker.
	Start grid.Position

	// Goal overrides the grid's goal marker.
	Goal grid.Position

	// Facing is the direction the walker faces at the start.
	Facing grid.Direction

	// TurnPenalty is added to the unit step cost whenever the facing
	// changes between consecutive steps.
	TurnPenalty int64

	hasStart bool
	hasGoal  bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - endpoints taken from the grid's markers
//   - Facing grid.Right (the conventional maze entry orientation)
//   - TurnPenalty = DefaultTurnPenalty.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Facing:      grid.Right,
		TurnPenalty: DefaultTurnPenalty,
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

// WithStartFacing sets the walker's initial orientation.
func WithStartFacing(d grid.Direction) Option {
	return func(o *Options) {
		o.Facing = d
	}
}

// WithTurnPenalty sets the fixed cost of changing facing.
//
//	p > 0:  every turn costs p on top of the unit step
//	p == 0: turns are free (degenerates to plain BFS costs)
//	p < 0:  invalid option → ErrBadTurnPenalty
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadTurnPenalty, p)
			return
		}
		o.TurnPenalty = p
	}
}

// turnCost returns 0 when facing is unchanged, TurnPenalty otherwise.
func (o *Options) turnCost(from, to grid.Direction) int64 {
	if from == to {
		return 0
	}

	return o.TurnPenalty
}
