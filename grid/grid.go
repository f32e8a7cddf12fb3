// Package grid provides the bounded 2D cell model shared by every
// search and simulation in gridkit. It supports:
//
//   - Construction from typed cells or from raw text lines
//   - Typed cell classification (Empty / Wall) with marker extraction
//   - O(1) bounds checks and canonical-order neighbor enumeration
//
// A Grid is immutable once built; obstacle overlays live in the search
// packages, never in the Grid itself.
package grid

import (
	"fmt"
)

// Grid is a bounded, rectangular, immutable-after-construction cell
// matrix. Width and Height define dimensions; cells[row][col] holds the
// classification of each cell. Start/goal markers discovered at parse
// time are recorded as auxiliary metadata.
type Grid struct {
	width, height int
	cells         [][]Cell
	start, goal   Position
	hasStart      bool
	hasGoal       bool
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	cp := make([][]Cell, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]Cell, w)
		copy(cp[r], cells[r])
	}

	return &Grid{width: w, height: h, cells: cp}, nil
}

// Parse builds a Grid from raw text lines, classifying each rune as
// Wall (the wall marker) or Empty (anything else), and recording the
// start/goal marker positions as grid metadata. Marker cells themselves
// are classified Empty: a walker stands on them.
//
// Trailing empty lines introduced by line-splitting are trimmed so the
// last logical row is never a spurious empty row.
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrMissingMarker (only
// when WithRequireMarkers is set and a marker is absent).
// Complexity: O(W×H) time and memory.
func Parse(lines []string, opts ...ParseOption) (*Grid, error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Trim trailing empty lines (a final "\n" split artifact).
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{height: len(lines)}
	g.cells = make([][]Cell, g.height)
	for r, line := range lines {
		runes := []rune(line)
		if r == 0 {
			g.width = len(runes)
		} else if len(runes) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(runes), g.width)
		}
		g.cells[r] = make([]Cell, g.width)
		for c, ch := range runes {
			switch ch {
			case o.WallMarker:
				g.cells[r][c] = Wall
			case o.StartMarker:
				g.start = Position{Row: r, Col: c}
				g.hasStart = true
			case o.GoalMarker:
				g.goal = Position{Row: r, Col: c}
				g.hasGoal = true
			}
			// Empty is the zero Cell; nothing to do for other runes.
		}
	}

	if o.RequireMarkers {
		if !g.hasStart {
			return nil, fmt.Errorf("%w: start marker %q", ErrMissingMarker, o.StartMarker)
		}
		if !g.hasGoal {
			return nil, fmt.Errorf("%w: goal marker %q", ErrMissingMarker, o.GoalMarker)
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Area returns Width × Height, the total cell count.
func (g *Grid) Area() int { return g.width * g.height }

// Start returns the recorded start marker position and whether one was
// present in the parsed input.
func (g *Grid) Start() (Position, bool) { return g.start, g.hasStart }

// Goal returns the recorded goal marker position and whether one was
// present in the parsed input.
func (g *Grid) Goal() (Position, bool) { return g.goal, g.hasGoal }

// InBounds reports whether p lies within the grid boundaries.
// Out-of-range coordinates are rejected, never wrapped.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// CellAt returns the classification of the cell at p.
// Callers must check InBounds first; p is indexed directly.
// Complexity: O(1).
func (g *Grid) CellAt(p Position) Cell {
	return g.cells[p.Row][p.Col]
}

// Walkable reports whether p is inside the grid and not a Wall.
// This is the single bounds+classification gate used by all searches,
// keeping out-of-bounds dereferences structurally unreachable.
// Complexity: O(1).
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] != Wall
}

// Neighbors returns the in-bounds neighbors of p as Steps, in canonical
// direction order (Up, Right, Down, Left). Walls are not filtered here;
// traversability is the caller's concern (see Walkable).
// Complexity: O(1), at most DirectionCount entries.
func (g *Grid) Neighbors(p Position) []Step {
	steps := make([]Step, 0, DirectionCount)
	for d := Up; d < DirectionCount; d++ {
		np := d.Apply(p)
		if g.InBounds(np) {
			steps = append(steps, Step{Pos: np, Dir: d})
		}
	}

	return steps
}
