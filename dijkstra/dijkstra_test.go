package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
)

// reindeerMaze is the canonical turn-penalty benchmark maze: best cost
// 7036 with the default penalty, and 45 cells shared by optimal paths.
var reindeerMaze = []string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#.#####.#.#",
	"#.#...#.....#.#",
	"#.#.#.#.###.#.#",
	"#S..#.....#...#",
	"###############",
}

func TestMinCost_Errors(t *testing.T) {
	_, err := dijkstra.MinCost(nil)
	assert.ErrorIs(t, err, dijkstra.ErrGridNil)

	unmarked, err := grid.Parse([]string{"..."})
	require.NoError(t, err)
	_, err = dijkstra.MinCost(unmarked)
	assert.ErrorIs(t, err, dijkstra.ErrMissingEndpoints)

	marked, err := grid.Parse([]string{"S.E"})
	require.NoError(t, err)
	_, err = dijkstra.MinCost(marked, dijkstra.WithTurnPenalty(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadTurnPenalty)

	_, err = dijkstra.MinCost(marked, dijkstra.WithStart(grid.Position{Row: 5, Col: 5}))
	assert.ErrorIs(t, err, dijkstra.ErrStartBlocked)
}

func TestMinCost_StraightCorridor(t *testing.T) {
	g, err := grid.Parse([]string{"S..E"})
	require.NoError(t, err)

	// Facing Right by default: three unit steps, zero turns.
	cost, err := dijkstra.MinCost(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
}

func TestMinCost_SingleTurn(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.",
		".E",
	})
	require.NoError(t, err)

	// Right one step (straight), then Down (one turn):
	// 1 + (1 + 1000) = 1002. The Down-first route pays two turns.
	cost, err := dijkstra.MinCost(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), cost)
}

// TestMinCost_MonotoneInPenalty: the optimal cost never decreases as
// the turn penalty grows, all else equal.
func TestMinCost_MonotoneInPenalty(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.#.",
		"..#.",
		"...E",
	})
	require.NoError(t, err)

	prev := int64(-1)
	for _, penalty := range []int64{0, 1, 10, 100, 1000} {
		cost, err := dijkstra.MinCost(g, dijkstra.WithTurnPenalty(penalty))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cost, prev, "penalty %d", penalty)
		prev = cost
	}
}

func TestMinCost_ZeroPenaltyIsStepCount(t *testing.T) {
	g, err := grid.Parse([]string{
		"S...",
		".##.",
		"...E",
	})
	require.NoError(t, err)

	cost, err := dijkstra.MinCost(g, dijkstra.WithTurnPenalty(0))
	require.NoError(t, err)
	// Manhattan distance of the endpoints; the wall forces no detour.
	assert.Equal(t, int64(5), cost)
}

func TestMinCost_NoPath(t *testing.T) {
	g, err := grid.Parse([]string{
		"S#E",
	})
	require.NoError(t, err)

	_, err = dijkstra.MinCost(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestMinCost_ReindeerMaze(t *testing.T) {
	g, err := grid.Parse(reindeerMaze)
	require.NoError(t, err)

	cost, err := dijkstra.MinCost(g)
	require.NoError(t, err)
	assert.Equal(t, int64(7036), cost)
}

func TestBestPathCells_ReindeerMaze(t *testing.T) {
	g, err := grid.Parse(reindeerMaze)
	require.NoError(t, err)

	cells, err := dijkstra.BestPathCells(g)
	require.NoError(t, err)
	assert.Len(t, cells, 45)

	start, _ := g.Start()
	goal, _ := g.Goal()
	assert.Contains(t, cells, start)
	assert.Contains(t, cells, goal)
}

// TestBestPathCells_TiedRoutes: with free turns every shortest step
// path ties, so both corners of an open 2×2 square are on best paths.
func TestBestPathCells_TiedRoutes(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.",
		".E",
	})
	require.NoError(t, err)

	cells, err := dijkstra.BestPathCells(g, dijkstra.WithTurnPenalty(0))
	require.NoError(t, err)
	assert.Len(t, cells, 4, "all four cells lie on one of the two tied paths")
}

// TestBestPathCells_SingleRoute: a corridor admits exactly one optimal
// path; the set is precisely its cells.
func TestBestPathCells_SingleRoute(t *testing.T) {
	g, err := grid.Parse([]string{"S..E"})
	require.NoError(t, err)

	cells, err := dijkstra.BestPathCells(g)
	require.NoError(t, err)
	assert.Len(t, cells, 4)
	for c := 0; c < 4; c++ {
		assert.Contains(t, cells, grid.Position{Row: 0, Col: c})
	}
}

// TestBestPathCells_PrunesCostlierRoute: two routes circle the center
// wall, but only the one-turn route is optimal under the default
// penalty (1004 vs 2004); the two-turn route's cells stay out.
func TestBestPathCells_PrunesCostlierRoute(t *testing.T) {
	g, err := grid.Parse([]string{
		"S..",
		".#.",
		"..E",
	})
	require.NoError(t, err)

	best, err := dijkstra.MinCost(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1004), best)

	cells, err := dijkstra.BestPathCells(g)
	require.NoError(t, err)
	want := []grid.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	assert.Len(t, cells, len(want))
	for _, p := range want {
		assert.Contains(t, cells, p)
	}
	assert.NotContains(t, cells, grid.Position{Row: 1, Col: 0})
}

func TestMinCost_Deterministic(t *testing.T) {
	g, err := grid.Parse(reindeerMaze)
	require.NoError(t, err)

	first, err := dijkstra.MinCost(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.MinCost(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMinCost_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := grid.Parse(reindeerMaze)
	require.NoError(t, err)
	_, err = dijkstra.MinCost(g, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithStartFacing(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.",
		".E",
	})
	require.NoError(t, err)

	// Facing Down, the Down-then-Right route is the single-turn one.
	cost, err := dijkstra.MinCost(g, dijkstra.WithStartFacing(grid.Down))
	require.NoError(t, err)
	assert.Equal(t, int64(1002), cost)
}
