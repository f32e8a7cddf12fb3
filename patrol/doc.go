// Package patrol implements guard-walk simulation on a grid.Grid: a
// walker moves straight, rotates clockwise in place when the next cell
// is blocked, and continues until it leaves the grid or provably cycles.
//
// What:
//
//   - Route: the set of distinct positions a guard visits before
//     stepping off the grid (its baseline patrol trace).
//   - Loops: whether the guard revisits a (position, direction) state,
//     reported as a plain loop/no-loop verdict.
//   - CountLoopingObstacles: how many single added obstacles turn the
//     patrol into a loop, trialed one at a time with guaranteed revert.
//
// Why:
//
//   - Patrol-coverage puzzles: how much ground does a bouncing walker
//     cover before escaping?
//   - Sabotage analysis: which single blockade traps the walker
//     forever? Candidates are exactly the baseline route cells; cells
//     the unmodified walk never reaches cannot alter it.
//
// Invariant:
//
//   - Loop detection uses an explicit (position, direction) visited
//     set. A revisited state proves a cycle immediately, strictly no
//     later than any Area-sized step-count bound would. The obstacle
//     overlay must still stay fixed during a single trial; the
//     trial-and-revert pattern guarantees exactly that.
//
// Complexity:
//
//   - Route / Loops: O(W×H×4) time, O(W×H×4) memory.
//   - CountLoopingObstacles: O(R × W×H×4) with R = route length.
//
// Errors:
//
//   - ErrGridNil, ErrMissingStart, ErrStartBlocked.
//   - ErrLooping: Route cannot produce a finite trace for a cycling
//     guard (Loops reports the same situation as a normal true).
//   - ctx.Err() on cancellation.
package patrol
