package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
)

// open builds an obstacle-free grid of the given dimensions.
func open(rows, cols int) *grid.Grid {
	lines := make([]string, rows)
	for r := range lines {
		row := make([]byte, cols)
		for c := range row {
			row[c] = '.'
		}
		lines[r] = string(row)
	}
	g, err := grid.Parse(lines)
	if err != nil {
		panic(err)
	}

	return g
}

func TestShortestPath_NilGrid(t *testing.T) {
	_, err := bfs.ShortestPath(nil)
	assert.ErrorIs(t, err, bfs.ErrGridNil)
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := open(3, 3) // no markers parsed
	_, err := bfs.ShortestPath(g)
	assert.ErrorIs(t, err, bfs.ErrMissingEndpoints)

	// A start alone is not enough for a path query.
	_, err = bfs.ShortestPath(g, bfs.WithStart(grid.Position{}))
	assert.ErrorIs(t, err, bfs.ErrMissingEndpoints)
}

func TestShortestPath_StartBlocked(t *testing.T) {
	g, err := grid.Parse([]string{"#.E"})
	require.NoError(t, err)

	_, err = bfs.ShortestPath(g, bfs.WithStart(grid.Position{Row: 0, Col: 0}))
	assert.ErrorIs(t, err, bfs.ErrStartBlocked)

	// Obstacle overlay blocks the start just like a wall does.
	blocked := map[grid.Position]struct{}{{Row: 0, Col: 1}: {}}
	_, err = bfs.ShortestPath(g,
		bfs.WithStart(grid.Position{Row: 0, Col: 1}),
		bfs.WithObstacles(blocked),
	)
	assert.ErrorIs(t, err, bfs.ErrStartBlocked)
}

// TestShortestPath_ManhattanLength: with no obstacles between endpoints,
// the number of steps equals the Manhattan distance.
func TestShortestPath_ManhattanLength(t *testing.T) {
	g := open(5, 5)
	start := grid.Position{Row: 0, Col: 0}
	goal := grid.Position{Row: 4, Col: 3}

	path, err := bfs.ShortestPath(g, bfs.WithStart(start), bfs.WithGoal(goal))
	require.NoError(t, err)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Equal(t, start.Manhattan(goal), len(path)-1, "steps must equal Manhattan distance")

	// Consecutive path cells must be 4-adjacent.
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "path must move one cell at a time")
	}
}

func TestShortestPath_AroundWall(t *testing.T) {
	g, err := grid.Parse([]string{
		"S#.",
		".#.",
		"..E",
	})
	require.NoError(t, err)

	path, err := bfs.ShortestPath(g)
	require.NoError(t, err)
	assert.Len(t, path, 5, "detour around the wall column takes 4 steps")
}

func TestShortestPath_NoPath(t *testing.T) {
	g, err := grid.Parse([]string{
		"S#E",
	})
	require.NoError(t, err)

	_, err = bfs.ShortestPath(g)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestReachable_ObstacleRequery mimics a corrupting grid: re-query after
// each single-cell corruption until the exit is cut off.
func TestReachable_ObstacleRequery(t *testing.T) {
	g := open(3, 3)
	start := grid.Position{Row: 0, Col: 0}
	goal := grid.Position{Row: 2, Col: 2}
	blocked := make(map[grid.Position]struct{})

	corruptions := []grid.Position{
		{Row: 0, Col: 1}, // top route gone, left edge still open
		{Row: 2, Col: 0}, // bottom-left gone, middle row still open
		{Row: 1, Col: 1}, // cuts the last corridor
	}
	wantReachable := []bool{true, true, false}

	for i, c := range corruptions {
		blocked[c] = struct{}{}
		ok, err := bfs.Reachable(g,
			bfs.WithStart(start),
			bfs.WithGoal(goal),
			bfs.WithObstacles(blocked),
		)
		require.NoError(t, err)
		assert.Equal(t, wantReachable[i], ok, "after corrupting %v", c)
	}
}

func TestDistances(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.#",
		".##",
		"...",
	})
	require.NoError(t, err)

	dist, err := bfs.Distances(g)
	require.NoError(t, err)

	want := map[grid.Position]int{
		{Row: 0, Col: 0}: 0,
		{Row: 0, Col: 1}: 1,
		{Row: 1, Col: 0}: 1,
		{Row: 2, Col: 0}: 2,
		{Row: 2, Col: 1}: 3,
		{Row: 2, Col: 2}: 4,
	}
	assert.Equal(t, want, dist)
}

// TestShortestPath_Deterministic: identical queries yield identical
// paths thanks to fixed neighbor enumeration order.
func TestShortestPath_Deterministic(t *testing.T) {
	g, err := grid.Parse([]string{
		"S...",
		".##.",
		"...E",
	})
	require.NoError(t, err)

	first, err := bfs.ShortestPath(g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := bfs.ShortestPath(g)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d diverged", i)
	}
}

func TestShortestPath_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := open(4, 4)
	_, err := bfs.ShortestPath(g,
		bfs.WithStart(grid.Position{}),
		bfs.WithGoal(grid.Position{Row: 3, Col: 3}),
		bfs.WithContext(ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_OnVisitAbort(t *testing.T) {
	sentinel := errors.New("stop here")
	g := open(3, 3)

	_, err := bfs.ShortestPath(g,
		bfs.WithStart(grid.Position{}),
		bfs.WithGoal(grid.Position{Row: 2, Col: 2}),
		bfs.WithOnVisit(func(pos grid.Position, depth int) error {
			if depth == 2 {
				return sentinel
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, sentinel)
}

func TestDistances_NoGoalRequired(t *testing.T) {
	g := open(2, 2) // no markers at all
	dist, err := bfs.Distances(g, bfs.WithStart(grid.Position{}))
	require.NoError(t, err)
	assert.Len(t, dist, 4)
}
