package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// BestPathCells returns every position lying on at least one
// minimum-cost start→goal path (start and goal included).
//
// Unlike MinCost, the search must enumerate ALL equal-cost optimal
// paths, which drives two deliberate departures from textbook Dijkstra:
//
//   - Each heap entry carries its full path-so-far, so that when a goal
//     state pops at the best cost, every position on that path joins the
//     result set directly.
//   - Relaxation re-pushes a state when the new cost is less than OR
//     EQUAL to its recorded best. Pruning on equality would discard
//     alternative paths that tie at that state and later rejoin.
//
// The search terminates only once a popped goal cost strictly exceeds
// the best goal cost found: the heap is monotonic, so no further
// equal-cost paths can remain.
//
// Returns the same sentinel errors as MinCost.
//
// Complexity: O(P×L) beyond the base search, where P is the number of
// tied optimal paths and L their length (path copies dominate).
func BestPathCells(g *grid.Grid, opts ...Option) (map[grid.Position]struct{}, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	// Seed the origin's path with the start cell itself.
	r.pq[0].path = []grid.Position{r.opts.Start}

	cells := make(map[grid.Position]struct{})
	var bestCost int64
	haveBest := false

	for r.pq.Len() > 0 {
		// Cancellation check, once per pop.
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem)

		if item.state.Pos == r.opts.Goal {
			if haveBest && item.cost > bestCost {
				// Strictly worse than the best goal cost: every tied
				// optimal path has already been drained from the heap.
				break
			}
			for _, p := range item.path {
				cells[p] = struct{}{}
			}
			bestCost = item.cost
			haveBest = true

			continue
		}

		for _, s := range r.g.Neighbors(item.state.Pos) {
			if !r.g.Walkable(s.Pos) {
				continue
			}
			next := State{Pos: s.Pos, Dir: s.Dir}
			nd := item.cost + 1 + r.opts.turnCost(item.state.Dir, s.Dir)
			// <= keeps equal-cost alternatives alive; < alone would
			// prematurely prune paths that tie here and rejoin later.
			if best, ok := r.dist[next]; ok && nd > best {
				continue
			}
			r.dist[next] = nd

			// Copy-on-extend: heap entries own their paths exclusively.
			path := make([]grid.Position, len(item.path), len(item.path)+1)
			copy(path, item.path)
			path = append(path, s.Pos)

			heap.Push(&r.pq, &stateItem{state: next, cost: nd, path: path})
		}
	}

	if !haveBest {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, r.opts.Start, r.opts.Goal)
	}

	return cells, nil
}
