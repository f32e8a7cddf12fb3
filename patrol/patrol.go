// Package patrol simulates a guard that walks straight until blocked,
// rotates clockwise in place on obstruction (no movement, no step), and
// keeps going until it steps off the grid, or never does.
//
// Loop detection relies on the explicit (position, direction) visited
// set rather than a step-count bound: the guard's full state space is
// exactly Area×4, and a revisited state proves a cycle immediately.
// The visited-set check fires strictly no later than any step-count
// heuristic would, and it needs no assumptions about the obstacle
// layout beyond the trial's own overlay.
package patrol

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// poseState is a (position, facing) pair, the guard's full state.
type poseState struct {
	pos grid.Position
	dir grid.Direction
}

// guard holds the mutable simulation state for one call.
type guard struct {
	g       *grid.Grid
	opts    Options
	pos     grid.Position
	dir     grid.Direction
	blocked map[grid.Position]struct{} // private overlay, trial-safe
}

// Route traces the guard until it steps off the grid and returns the
// set of distinct positions visited (start included).
//
// A guard that cycles forever has no finite trace; that case returns
// ErrLooping. Other failures: ErrGridNil, ErrMissingStart,
// ErrStartBlocked, or ctx.Err() on cancellation.
//
// Complexity: O(W×H×4) time, O(W×H) memory.
func Route(g *grid.Grid, opts ...Option) (map[grid.Position]struct{}, error) {
	w, err := newGuard(g, opts)
	if err != nil {
		return nil, err
	}

	visited, looped, err := w.walk(true)
	if err != nil {
		return nil, err
	}
	if looped {
		return nil, fmt.Errorf("%w: start %v facing %s", ErrLooping, w.opts.Start, w.opts.Facing)
	}

	return visited, nil
}

// Loops reports whether the guard revisits a (position, direction)
// state before leaving the grid. Looping is a normal true verdict, not
// an error.
//
// Complexity: O(W×H×4) time and memory.
func Loops(g *grid.Grid, opts ...Option) (bool, error) {
	w, err := newGuard(g, opts)
	if err != nil {
		return false, err
	}

	_, looped, err := w.walk(false)

	return looped, err
}

// CountLoopingObstacles counts the positions where adding exactly one
// obstacle sends the guard into a loop. Only cells on the baseline
// patrol route are candidates (the unmodified walk never reaches any
// other cell, so no other cell can change its behavior); the start
// cell itself is excluded because the guard stands there.
//
// Each trial adds its candidate to a private overlay, runs loop
// detection from the original start, and removes it again; the grid and
// the caller's obstacle set are never left mutated.
//
// Complexity: O(R × W×H×4) time with R = baseline route length.
func CountLoopingObstacles(g *grid.Grid, opts ...Option) (int, error) {
	baseline, err := Route(g, opts...)
	if err != nil {
		return 0, err
	}

	w, err := newGuard(g, opts)
	if err != nil {
		return 0, err
	}

	count := 0
	for candidate := range baseline {
		if candidate == w.opts.Start {
			continue
		}

		// Trial-and-revert on the private overlay.
		w.blocked[candidate] = struct{}{}
		w.pos, w.dir = w.opts.Start, w.opts.Facing
		_, looped, err := w.walk(false)
		delete(w.blocked, candidate)

		if err != nil {
			return 0, err
		}
		if looped {
			count++
		}
	}

	return count, nil
}

// newGuard validates inputs, resolves the start against grid markers,
// and copies the obstacle overlay so trials never touch caller state.
func newGuard(g *grid.Grid, opts []Option) (*guard, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.hasStart {
		start, ok := g.Start()
		if !ok {
			return nil, ErrMissingStart
		}
		o.Start = start
	}

	w := &guard{
		g:       g,
		opts:    o,
		pos:     o.Start,
		dir:     o.Facing,
		blocked: make(map[grid.Position]struct{}, len(o.Obstacles)+1),
	}
	for p := range o.Obstacles {
		w.blocked[p] = struct{}{}
	}
	if !w.traversable(o.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, o.Start)
	}

	return w, nil
}

// traversable reports whether p is walkable and not in the overlay.
func (w *guard) traversable(p grid.Position) bool {
	if !w.g.Walkable(p) {
		return false
	}
	_, hit := w.blocked[p]

	return !hit
}

// obstructed reports whether p blocks movement: in bounds AND occupied.
// Stepping off the grid is an exit, never an obstruction.
func (w *guard) obstructed(p grid.Position) bool {
	if !w.g.InBounds(p) {
		return false
	}
	if w.g.CellAt(p) == grid.Wall {
		return true
	}
	_, hit := w.blocked[p]

	return hit
}

// walk advances the guard one state transition at a time until it steps
// off the grid (looped=false) or revisits a state (looped=true).
// When collect is true the distinct visited positions are returned.
func (w *guard) walk(collect bool) (map[grid.Position]struct{}, bool, error) {
	var visited map[grid.Position]struct{}
	if collect {
		visited = make(map[grid.Position]struct{})
	}
	seen := make(map[poseState]struct{}, w.g.Area())

	for w.g.InBounds(w.pos) {
		// Cancellation check, once per transition.
		select {
		case <-w.opts.Ctx.Done():
			return nil, false, w.opts.Ctx.Err()
		default:
		}

		state := poseState{pos: w.pos, dir: w.dir}
		if _, again := seen[state]; again {
			return visited, true, nil
		}
		seen[state] = struct{}{}
		if collect {
			visited[w.pos] = struct{}{}
		}

		next := w.dir.Apply(w.pos)
		if w.obstructed(next) {
			// Rotate in place; the retry happens on the next iteration.
			w.dir = w.dir.Clockwise()
			continue
		}
		w.pos = next
	}

	return visited, false, nil
}
