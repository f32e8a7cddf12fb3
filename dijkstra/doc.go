// Package dijkstra implements weighted state-space search on a
// grid.Grid, where a state is (position, facing direction) and each
// step costs 1 plus a fixed penalty whenever the facing changes.
//
// What:
//
//   - State: (Position, Direction), the unit of visitation. Cost
//     depends on facing, so the distance table is keyed by State, not
//     by Position.
//   - MinCost: cheapest start→goal cost; terminates on the first pop of
//     the goal position in any facing.
//   - BestPathCells: the set of every position on ANY minimum-cost
//     path. Heap entries carry their path-so-far, relaxation admits
//     equal-cost revisits (≤, not <), and the search only stops once a
//     popped goal cost strictly exceeds the best found.
//
// Why:
//
//   - Maze scoring with turn penalties: vehicles, robots, and reindeer
//     that pay dearly to rotate but cheaply to roll.
//   - Best-seat analysis: every cell on some optimal route, not just
//     one arbitrary winner.
//
// Complexity:
//
//   - MinCost: O(S log S) time, O(S) memory, with S = W×H×4 states.
//   - BestPathCells: adds O(P×L) for P tied optimal paths of length L
//     (per-entry path copies dominate).
//
// Options:
//
//   - WithStart / WithGoal: override the grid's parsed markers.
//   - WithStartFacing: initial orientation (default grid.Right).
//   - WithTurnPenalty: fixed turn cost (default 1000); only "straight"
//     versus "any turn" is distinguished, never the turn's degree.
//   - WithContext: cancellation.
//
// Errors:
//
//   - ErrGridNil, ErrMissingEndpoints, ErrStartBlocked,
//     ErrBadTurnPenalty, ErrNoPath (a normal data-like outcome),
//     ctx.Err() on cancellation.
package dijkstra
