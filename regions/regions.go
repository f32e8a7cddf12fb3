// Package regions labels 4-connected regions of equal-valued cells and
// measures them: area, perimeter, and merged straight sides.
//
// The flood fill is an explicit-queue traversal (never recursion): a
// visited set plus a pending queue grow each region breadth-first, so
// arbitrarily large regions cannot blow the call stack.
package regions

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Build scans the labeled lines once and flood-fills every unvisited
// cell into its Region, accumulating the perimeter during the fill: one
// increment per cell edge whose neighbor differs or is out of bounds.
//
// Regions are emitted in row-major order of their first-scanned cell.
// Returns ErrEmptyGrid or ErrNonRectangular.
//
// Complexity: O(W×H×4) time, O(W×H) memory.
func Build(lines []string) ([]*Region, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(line), w)
		}
	}

	visited := make(map[grid.Position]struct{}, h*w)
	var out []*Region

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			seed := grid.Position{Row: row, Col: col}
			if _, seen := visited[seed]; seen {
				continue
			}
			out = append(out, fill(lines, seed, visited))
		}
	}

	return out, nil
}

// fill grows one region from seed with an explicit queue, marking the
// shared visited set and counting boundary edges as it goes.
func fill(lines []string, seed grid.Position, visited map[grid.Position]struct{}) *Region {
	label := lines[seed.Row][seed.Col]
	reg := &Region{
		Label:   label,
		members: make(map[grid.Position]struct{}),
	}

	queue := []grid.Position{seed}
	visited[seed] = struct{}{}
	reg.members[seed] = struct{}{}

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		reg.Cells = append(reg.Cells, p)

		for _, d := range grid.Directions() {
			np := d.Apply(p)
			if !inBounds(lines, np) || lines[np.Row][np.Col] != label {
				// Edge toward a foreign cell or the outside world.
				reg.Perimeter++
				continue
			}
			if _, seen := visited[np]; seen {
				continue
			}
			visited[np] = struct{}{}
			reg.members[np] = struct{}{}
			queue = append(queue, np)
		}
	}

	return reg
}

// inBounds reports whether p indexes into lines.
func inBounds(lines []string, p grid.Position) bool {
	return p.Row >= 0 && p.Row < len(lines) && p.Col >= 0 && p.Col < len(lines[0])
}

// boundaryEdge is one cell edge on the region's perimeter, identified
// by the member cell and the outward direction of the edge.
type boundaryEdge struct {
	pos grid.Position
	dir grid.Direction
}

// Sides returns the number of straight contiguous perimeter segments:
// collinear boundary edges merge into a single side.
//
// Every boundary edge is collected as (cell, outward direction); an
// edge then opens a NEW side only when its successor along the side's
// run is absent: for horizontal (Up/Down) edges the cell one column
// right, for vertical (Left/Right) edges the cell one row down, must
// not carry a same-direction boundary edge. Each maximal run is thus
// counted exactly once, by its last edge in scan direction.
//
// Complexity: O(Area×4) time and memory.
func (r *Region) Sides() int {
	edges := make(map[boundaryEdge]struct{}, r.Perimeter)
	for _, p := range r.Cells {
		for _, d := range grid.Directions() {
			if !r.contains(d.Apply(p)) {
				edges[boundaryEdge{pos: p, dir: d}] = struct{}{}
			}
		}
	}

	sides := 0
	for e := range edges {
		var next grid.Position
		switch e.dir {
		case grid.Up, grid.Down:
			next = grid.Right.Apply(e.pos)
		default: // Left, Right
			next = grid.Down.Apply(e.pos)
		}
		if _, runs := edges[boundaryEdge{pos: next, dir: e.dir}]; !runs {
			sides++
		}
	}

	return sides
}
