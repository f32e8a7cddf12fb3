// Package trails walks monotone-ascent trails on a height grid: every
// step moves to a 4-adjacent cell exactly one unit higher, from
// 0-height trailheads up to 9-height peaks.
//
// Both traversals use an explicit stack, never recursion; the strict
// +1 ascent makes the walk a DAG, so no cycle guard is needed for path
// counting and a plain seen-set suffices for peak collection.
package trails

import (
	"github.com/katalvlaran/gridkit/grid"
)

// Score sums, over every trailhead, the number of DISTINCT peaks
// reachable by monotone-ascent trails. Reaching the same peak along
// many routes counts once.
//
// Returns ErrEmptyGrid or ErrNonRectangular on a malformed matrix.
// Complexity: O(T × W×H) time with T = trailhead count.
func Score(heights [][]int) (int, error) {
	if err := validate(heights); err != nil {
		return 0, err
	}

	total := 0
	forEachTrailhead(heights, func(head grid.Position) {
		total += len(reachablePeaks(heights, head))
	})

	return total, nil
}

// Rating sums, over every trailhead, the number of DISTINCT
// monotone-ascent trails that end on a peak. Two trails differing in
// any cell count separately.
//
// Returns ErrEmptyGrid or ErrNonRectangular on a malformed matrix.
// Complexity: O(T × P) time with P = distinct trail count.
func Rating(heights [][]int) (int, error) {
	if err := validate(heights); err != nil {
		return 0, err
	}

	total := 0
	forEachTrailhead(heights, func(head grid.Position) {
		total += countTrails(heights, head)
	})

	return total, nil
}

// forEachTrailhead invokes fn for every 0-height cell in row-major order.
func forEachTrailhead(heights [][]int, fn func(grid.Position)) {
	for r, row := range heights {
		for c, h := range row {
			if h == trailheadHeight {
				fn(grid.Position{Row: r, Col: c})
			}
		}
	}
}

// ascends reports whether np is in bounds and exactly one unit higher
// than the height at p.
func ascends(heights [][]int, p, np grid.Position) bool {
	if np.Row < 0 || np.Row >= len(heights) || np.Col < 0 || np.Col >= len(heights[0]) {
		return false
	}

	return heights[np.Row][np.Col] == heights[p.Row][p.Col]+1
}

// reachablePeaks collects the distinct peaks reachable from head via a
// stack-based DFS with a seen-set.
func reachablePeaks(heights [][]int, head grid.Position) map[grid.Position]struct{} {
	peaks := make(map[grid.Position]struct{})
	seen := map[grid.Position]struct{}{head: {}}
	stack := []grid.Position{head}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if heights[p.Row][p.Col] == peakHeight {
			peaks[p] = struct{}{}
			continue
		}
		for _, d := range grid.Directions() {
			np := d.Apply(p)
			if !ascends(heights, p, np) {
				continue
			}
			if _, ok := seen[np]; ok {
				continue
			}
			seen[np] = struct{}{}
			stack = append(stack, np)
		}
	}

	return peaks
}

// countTrails counts distinct ascending trails from head to any peak.
// No seen-set: the strict +1 ascent forbids revisits within one trail,
// and deliberate re-expansion is exactly what enumerates every trail.
func countTrails(heights [][]int, head grid.Position) int {
	count := 0
	stack := []grid.Position{head}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if heights[p.Row][p.Col] == peakHeight {
			count++
			continue
		}
		for _, d := range grid.Directions() {
			if np := d.Apply(p); ascends(heights, p, np) {
				stack = append(stack, np)
			}
		}
	}

	return count
}
