// Package bfs provides breadth-first search over a grid.Grid,
// returning unweighted shortest paths, reachability verdicts, and
// full distance maps.
//
// BFS explores cells in increasing step distance from the start, with
// ties among equal-length shortest paths broken by the grid's canonical
// neighbor order (Up, Right, Down, Left) and first-visit order. Exactly
// one path among possibly many is returned.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state for one search call.
// It is exclusively owned by that call and never shared.
type walker struct {
	g      *grid.Grid
	opts   Options
	queue  []queueItem
	parent map[grid.Position]grid.Position
	depth  map[grid.Position]int
}

// ShortestPath runs breadth-first search on g from start to goal and
// returns one shortest path (by step count), start and goal inclusive.
// The number of steps taken is len(path)-1.
//
// Endpoints come from WithStart/WithGoal, falling back to the grid's
// parsed markers. Returns ErrGridNil, ErrMissingEndpoints,
// ErrStartBlocked, ErrNoPath, a hook error, or ctx.Err() on cancellation.
//
// Complexity: O(W×H) time and memory.
func ShortestPath(g *grid.Grid, opts ...Option) ([]grid.Position, error) {
	w, err := newWalker(g, opts, true)
	if err != nil {
		return nil, err
	}
	found, err := w.run(true)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, w.opts.Start, w.opts.Goal)
	}

	return w.reconstruct(), nil
}

// Reachable reports whether the goal can still be reached from the
// start. Unreachability is a normal false verdict, not an error; the
// error return covers invalid input, hook failures, and cancellation.
//
// Complexity: O(W×H) time and memory.
func Reachable(g *grid.Grid, opts ...Option) (bool, error) {
	w, err := newWalker(g, opts, true)
	if err != nil {
		return false, err
	}

	return w.run(true)
}

// Distances runs an exhaustive BFS from the start and returns the step
// distance to every reachable cell (start included at distance 0).
// No goal is required; the grid's goal marker, if any, is ignored.
//
// Complexity: O(W×H) time and memory.
func Distances(g *grid.Grid, opts ...Option) (map[grid.Position]int, error) {
	w, err := newWalker(g, opts, false)
	if err != nil {
		return nil, err
	}
	if _, err = w.run(false); err != nil {
		return nil, err
	}

	return w.depth, nil
}

// newWalker validates inputs, resolves endpoints against grid markers,
// and seeds the queue with the start cell.
func newWalker(g *grid.Grid, opts []Option, needGoal bool) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Resolve endpoints: explicit options win, grid markers fill gaps.
	if !o.hasStart {
		start, ok := g.Start()
		if !ok {
			return nil, fmt.Errorf("%w: no start", ErrMissingEndpoints)
		}
		o.Start = start
	}
	if needGoal && !o.hasGoal {
		goal, ok := g.Goal()
		if !ok {
			return nil, fmt.Errorf("%w: no goal", ErrMissingEndpoints)
		}
		o.Goal = goal
	}

	w := &walker{g: g, opts: o}
	if !w.traversable(o.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, o.Start)
	}

	w.parent = make(map[grid.Position]grid.Position)
	w.depth = map[grid.Position]int{o.Start: 0}
	w.queue = []queueItem{{pos: o.Start}}

	return w, nil
}

// traversable reports whether p is walkable on the grid and not in the
// caller-supplied obstacle overlay.
func (w *walker) traversable(p grid.Position) bool {
	if !w.g.Walkable(p) {
		return false
	}
	_, blocked := w.opts.Obstacles[p]

	return !blocked
}

// run processes the queue until the goal is dequeued (when stopAtGoal),
// the queue drains, a hook errs, or the context is canceled.
// Cells are marked visited on enqueue, so each enters the queue once.
func (w *walker) run(stopAtGoal bool) (bool, error) {
	for len(w.queue) > 0 {
		// Cancellation check, once per dequeue.
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		if stopAtGoal && item.pos == w.opts.Goal {
			return true, nil
		}

		for _, s := range w.g.Neighbors(item.pos) {
			if !w.traversable(s.Pos) {
				continue
			}
			if _, seen := w.depth[s.Pos]; seen {
				continue
			}
			w.depth[s.Pos] = item.depth + 1
			w.parent[s.Pos] = item.pos
			w.queue = append(w.queue, queueItem{pos: s.Pos, depth: item.depth + 1})
		}
	}

	return false, nil
}

// reconstruct walks the parent map backwards from goal to start and
// reverses in place. Only valid after run reported the goal found.
func (w *walker) reconstruct() []grid.Position {
	path := []grid.Position{w.opts.Goal}
	for at := w.opts.Goal; at != w.opts.Start; {
		at = w.parent[at]
		path = append(path, at)
	}
	// Reverse to start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
