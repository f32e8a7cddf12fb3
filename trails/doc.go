// Package trails scores monotone-ascent trails on a digit height grid.
//
// What:
//
//   - ParseHeights: digit lines → rectangular height matrix.
//   - Score: per-trailhead count of distinct reachable peaks, summed.
//   - Rating: per-trailhead count of distinct complete trails, summed.
//
// Why:
//
//   - Hiking-map puzzles: how many summits does each trailhead serve,
//     and how many genuinely different routes lead up?
//
// Implementation:
//
//   - Explicit-stack DFS in both modes. Strict +1 ascent makes the
//     reachability graph a DAG: Score adds a seen-set to deduplicate
//     peaks, Rating deliberately re-expands to enumerate every trail.
//
// Complexity:
//
//   - Score: O(T × W×H); Rating: O(T × P) with P = distinct trails.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadHeight (parse only).
package trails
