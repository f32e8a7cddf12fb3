// Package bfs implements unweighted reachability search over a
// grid.Grid: shortest paths by step count, reachability probes, and
// exhaustive distance maps.
//
// What:
//
//   - ShortestPath: one shortest start→goal path, endpoints inclusive.
//     Ties among equal-length paths are broken by the grid's canonical
//     neighbor order and first-visit order; exactly one path is returned.
//   - Reachable: boolean "can the goal still be reached" probe, the
//     cheap form for re-querying after obstacle-set mutations, with no
//     path bookkeeping handed back.
//   - Distances: step distance from the start to every reachable cell.
//
// Why:
//
//   - Corrupting-grid puzzles: rerun ShortestPath/Reachable with one
//     more entry in the WithObstacles overlay after each corruption.
//     Full re-search is the supported (and correct) re-query model; no
//     incremental algorithm is attempted.
//   - Corridor analysis: Distances feeds downstream shortcut counting
//     (see the racing package).
//
// Complexity:
//
//   - All entry points: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrGridNil:          nil grid pointer.
//   - ErrMissingEndpoints: no start/goal in options or grid markers.
//   - ErrStartBlocked:     start cell is a wall, obstacle, or outside.
//   - ErrNoPath:           goal unreachable (a normal, data-like outcome;
//     Reachable reports it as false instead).
//   - ctx.Err():           search canceled via WithContext.
package bfs
