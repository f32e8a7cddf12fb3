// Package dijkstra implements Dijkstra's shortest-path algorithm over
// (position, direction) states on a grid, with a fixed penalty applied
// whenever a step changes facing.
//
// Notes on implementation choices:
//
//   - Edge weight from state S to neighbor state S' is
//     1 + turnCost(S.Dir, S'.Dir); all weights are non-negative, so the
//     first pop of a goal state carries the optimal cost.
//   - We use a "lazy" decrease-key strategy: improved costs push
//     duplicate heap entries, and stale entries are skipped when popped.
//   - DistanceTable entries default to "unknown" (absent map key) and
//     only ever decrease as cheaper paths are found.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// MinCost computes the cheapest start→goal cost where each step costs 1
// plus TurnPenalty when the facing changes. The search terminates on the
// first pop of the goal position in any facing: monotonic non-negative
// weights guarantee optimality at first pop.
//
// Endpoints come from WithStart/WithGoal, falling back to grid markers.
// Returns ErrGridNil, ErrMissingEndpoints, ErrStartBlocked,
// ErrBadTurnPenalty, ErrNoPath, or ctx.Err() on cancellation.
//
// Complexity: O(W×H×4 × log(W×H×4)) time, O(W×H×4) memory.
func MinCost(g *grid.Grid, opts ...Option) (int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, err
	}

	for r.pq.Len() > 0 {
		// Cancellation check, once per pop.
		select {
		case <-r.opts.Ctx.Done():
			return 0, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem)
		if item.state.Pos == r.opts.Goal {
			return item.cost, nil
		}
		// Skip stale lazy-decrease-key entries.
		if best, ok := r.dist[item.state]; ok && item.cost > best {
			continue
		}

		for _, s := range r.g.Neighbors(item.state.Pos) {
			if !r.g.Walkable(s.Pos) {
				continue
			}
			next := State{Pos: s.Pos, Dir: s.Dir}
			nd := item.cost + 1 + r.opts.turnCost(item.state.Dir, s.Dir)
			// Strict improvement only: one optimal path suffices here.
			if best, ok := r.dist[next]; ok && nd >= best {
				continue
			}
			r.dist[next] = nd
			heap.Push(&r.pq, &stateItem{state: next, cost: nd})
		}
	}

	return 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, r.opts.Start, r.opts.Goal)
}

// runner holds the mutable state for a single search execution.
// It is exclusively owned by that call and never shared.
type runner struct {
	g    *grid.Grid
	opts Options
	// dist maps each visited State to its best known cost so far.
	// Absent keys mean "unknown" (infinite).
	dist map[State]int64
	pq   statePQ
}

// newRunner validates inputs, resolves endpoints against grid markers,
// and seeds the heap with the start state at cost 0.
func newRunner(g *grid.Grid, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !o.hasStart {
		start, ok := g.Start()
		if !ok {
			return nil, fmt.Errorf("%w: no start", ErrMissingEndpoints)
		}
		o.Start = start
	}
	if !o.hasGoal {
		goal, ok := g.Goal()
		if !ok {
			return nil, fmt.Errorf("%w: no goal", ErrMissingEndpoints)
		}
		o.Goal = goal
	}
	if !g.Walkable(o.Start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, o.Start)
	}

	origin := State{Pos: o.Start, Dir: o.Facing}
	r := &runner{
		g:    g,
		opts: o,
		dist: map[State]int64{origin: 0},
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: origin})

	return r, nil
}

// stateItem is a heap entry: a state, its cost from the start, and (for
// the all-best-paths variant) the path that produced it.
type stateItem struct {
	state State
	cost  int64
	path  []grid.Position // nil in MinCost; populated by BestPathCells
}

// statePQ is a min-heap of *stateItem ordered by cost ascending,
// operated under the lazy-decrease-key pattern: outdated entries remain
// in the heap and are ignored when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
