// Package regions defines the Region result type and sentinel errors
// for connected-region analysis of labeled grids.
package regions

import (
	"errors"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for region construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("regions: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("regions: all rows must have the same length")
)

// Region is one 4-connected run of equally labeled cells. It is
// produced by Build in a single pass and immutable after construction;
// prices and side counts are derived, never stored.
type Region struct {
	// Label is the cell value shared by every member.
	Label byte
	// Cells lists the member positions in discovery order
	// (row-major scan, then breadth-first growth).
	Cells []grid.Position
	// Perimeter counts cell edges bordering a non-member cell or the
	// grid boundary.
	Perimeter int

	// members mirrors Cells for O(1) membership tests in Sides.
	members map[grid.Position]struct{}
}

// Area returns the number of member cells.
func (r *Region) Area() int { return len(r.Cells) }

// Price returns Area × Perimeter (perimeter pricing).
func (r *Region) Price() int { return r.Area() * r.Perimeter }

// BulkPrice returns Area × Sides (straight-side pricing).
func (r *Region) BulkPrice() int { return r.Area() * r.Sides() }

// contains reports whether p is a member cell.
func (r *Region) contains(p grid.Position) bool {
	_, ok := r.members[p]

	return ok
}
