// Package racing measures how much time wall-skipping shortcuts save
// on a grid course.
//
// What:
//
//   - Analyze: BFS distance index from the start over every corridor
//     cell, validated against the goal marker.
//   - Course.Length: honest start→goal step count.
//   - Course.CountShortcuts: distinct (entry, exit) pairs within a
//     Manhattan radius whose saving (exit distance minus entry
//     distance minus the skip's own length) meets a threshold.
//
// Why:
//
//   - Racetrack puzzles: which brief phases through walls beat the
//     honest route, and by how much?
//
// Complexity:
//
//   - Analyze: O(W×H). CountShortcuts: O(C × maxSkip²) with
//     C = corridor cells.
//
// Errors:
//
//   - ErrGridNil, ErrMissingEndpoints, ErrNoCourse, ErrBadSkip.
package racing
