// Package trails defines sentinel errors and the height-grid parser
// for trailhead scoring.
package trails

import (
	"errors"
	"fmt"
)

// Sentinel errors for height-grid handling.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("trails: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("trails: all rows must have the same length")
	// ErrBadHeight indicates a non-digit rune in the height input.
	ErrBadHeight = errors.New("trails: height cells must be digits 0-9")
)

// Trailhead height and peak height of a walkable trail.
const (
	trailheadHeight = 0
	peakHeight      = 9
)

// ParseHeights converts digit lines into a rectangular height matrix.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadHeight.
// Complexity: O(W×H).
func ParseHeights(lines []string) ([][]int, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	heights := make([][]int, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(line), w)
		}
		heights[r] = make([]int, w)
		for c, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadHeight, ch, r, c)
			}
			heights[r][c] = int(ch - '0')
		}
	}

	return heights, nil
}

// validate re-checks a caller-supplied matrix for shape only; height
// values outside 0-9 are harmless (they never join a trail).
func validate(heights [][]int) error {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(heights[0])
	for r, row := range heights {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrNonRectangular, r, len(row), w)
		}
	}

	return nil
}
