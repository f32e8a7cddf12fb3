// Package racing analyzes wall-skip shortcuts along a grid course: it
// indexes every corridor cell by its step distance from the start, then
// counts the (entry, exit) pairs where briefly ignoring walls saves
// enough steps to matter.
package racing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for course analysis.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("racing: grid is nil")

	// ErrMissingEndpoints is returned when the grid lacks start or goal
	// markers; a course needs both.
	ErrMissingEndpoints = errors.New("racing: grid must carry start and goal markers")

	// ErrNoCourse is returned when the goal is unreachable from the
	// start, so there is no course to race.
	ErrNoCourse = errors.New("racing: goal unreachable from start")

	// ErrBadSkip is returned for a non-positive shortcut radius.
	ErrBadSkip = errors.New("racing: maxSkip must be at least 1")
)

// Course is an analyzed racetrack: an immutable distance index from
// the start over every reachable corridor cell.
type Course struct {
	g     *grid.Grid
	dist  map[grid.Position]int
	start grid.Position
	goal  grid.Position
}

// Analyze runs a full BFS from the grid's start marker and builds the
// distance index. Returns ErrGridNil, ErrMissingEndpoints (markers
// absent), or ErrNoCourse (goal unreachable).
//
// Complexity: O(W×H) time and memory.
func Analyze(g *grid.Grid) (*Course, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, okS := g.Start()
	goal, okG := g.Goal()
	if !okS || !okG {
		return nil, ErrMissingEndpoints
	}

	dist, err := bfs.Distances(g, bfs.WithStart(start))
	if err != nil {
		return nil, fmt.Errorf("racing: distance index failed: %w", err)
	}
	if _, reachable := dist[goal]; !reachable {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoCourse, start, goal)
	}

	return &Course{g: g, dist: dist, start: start, goal: goal}, nil
}

// Length returns the honest (no-shortcut) step count start→goal.
func (c *Course) Length() int {
	return c.dist[c.goal]
}

// CountShortcuts counts the distinct (entry, exit) corridor pairs
// where passing through walls for at most maxSkip steps saves at least
// minSaving honest steps. A shortcut's saving is
//
//	dist(exit) − dist(entry) − manhattan(entry, exit)
//
// since the skip itself still costs its Manhattan length. Pairs are
// ordered: entering at A and surfacing at B is a different shortcut
// from B to A (only one of the two ever saves anything).
//
// Returns ErrBadSkip for maxSkip < 1.
//
// Complexity: O(C × maxSkip²) time with C = corridor cell count.
func (c *Course) CountShortcuts(maxSkip, minSaving int) (int, error) {
	if maxSkip < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadSkip, maxSkip)
	}

	count := 0
	for entry, dEntry := range c.dist {
		// Scan the Manhattan ball of radius maxSkip around the entry.
		for dr := -maxSkip; dr <= maxSkip; dr++ {
			span := maxSkip - abs(dr)
			for dc := -span; dc <= span; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				exit := grid.Position{Row: entry.Row + dr, Col: entry.Col + dc}
				dExit, corridor := c.dist[exit]
				if !corridor {
					continue
				}
				if dExit-dEntry-entry.Manhattan(exit) >= minSaving {
					count++
				}
			}
		}
	}

	return count, nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
