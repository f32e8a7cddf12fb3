// Package grid defines core types, parse options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridkit.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingMarker indicates a required start or goal marker was absent.
	ErrMissingMarker = errors.New("grid: required marker not found")
)

// Position identifies a cell by (Row, Col), origin at (0,0), row-major.
// It is a value type: copy freely, compare with ==, use as a map key.
type Position struct {
	Row, Col int
}

// Manhattan returns the L1 distance between p and q.
// Complexity: O(1).
func (p Position) Manhattan(q Position) int {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Direction is one of the four cardinal facings. The ordering
// Up, Right, Down, Left is fixed: it is the canonical neighbor
// enumeration order everywhere in gridkit, and it makes a clockwise
// turn equal to (d+1) % DirectionCount.
type Direction int

const (
	// Up decreases the row index.
	Up Direction = iota
	// Right increases the column index.
	Right
	// Down increases the row index.
	Down
	// Left decreases the column index.
	Left

	// DirectionCount is the number of cardinal directions.
	DirectionCount = 4
)

// deltas is indexed by Direction; each entry is (dRow, dCol).
var deltas = [DirectionCount][2]int{
	{-1, 0}, // Up
	{0, 1},  // Right
	{1, 0},  // Down
	{0, -1}, // Left
}

// Delta returns the (dRow, dCol) step for d.
func (d Direction) Delta() (int, int) {
	return deltas[d][0], deltas[d][1]
}

// Apply returns the position one step from p in direction d.
// No bounds check is performed; callers pair this with Grid.InBounds.
func (d Direction) Apply(p Position) Position {
	return Position{Row: p.Row + deltas[d][0], Col: p.Col + deltas[d][1]}
}

// Clockwise returns the direction one quarter-turn clockwise of d.
func (d Direction) Clockwise() Direction {
	return (d + 1) % DirectionCount
}

// String renders the conventional arrow glyph for d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	default:
		return "?"
	}
}

// Directions returns all cardinal directions in canonical order.
// The returned slice is freshly allocated on each call.
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// Cell classifies a single grid cell.
type Cell int

const (
	// Empty is a traversable cell.
	Empty Cell = iota
	// Wall is a blocking cell.
	Wall
)

// Step pairs a neighboring position with the direction that reaches it.
// Neighbor enumeration yields Steps in canonical direction order so that
// tie-breaking in downstream searches is deterministic.
type Step struct {
	Pos Position
	Dir Direction
}

// ParseOptions contains tunable parameters for Parse.
type ParseOptions struct {
	// StartMarker is the rune recorded as the start position.
	StartMarker rune
	// GoalMarker is the rune recorded as the goal position.
	GoalMarker rune
	// WallMarker is the rune classified as Wall.
	WallMarker rune
	// RequireMarkers makes absent start/goal markers a parse error.
	RequireMarkers bool
}

// ParseOption configures Parse behavior via functional arguments.
type ParseOption func(*ParseOptions)

// DefaultParseOptions returns ParseOptions with conventional markers:
// StartMarker='S', GoalMarker='E', WallMarker='#', markers optional.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		StartMarker:    'S',
		GoalMarker:     'E',
		WallMarker:     '#',
		RequireMarkers: false,
	}
}

// WithStartMarker sets the rune recorded as the start position.
func WithStartMarker(r rune) ParseOption {
	return func(o *ParseOptions) { o.StartMarker = r }
}

// WithGoalMarker sets the rune recorded as the goal position.
func WithGoalMarker(r rune) ParseOption {
	return func(o *ParseOptions) { o.GoalMarker = r }
}

// WithWallMarker sets the rune classified as Wall.
func WithWallMarker(r rune) ParseOption {
	return func(o *ParseOptions) { o.WallMarker = r }
}

// WithRequireMarkers makes Parse fail with ErrMissingMarker when either
// the start or the goal marker does not appear in the input.
func WithRequireMarkers() ParseOption {
	return func(o *ParseOptions) { o.RequireMarkers = true }
}
