// Package grid models a bounded rectangular cell grid with typed cell
// classification and deterministic neighbor enumeration.
//
// What:
//
//   - Position: (Row, Col) value type, map-key safe, structural equality.
//   - Direction: Up, Right, Down, Left in fixed clockwise order;
//     Clockwise() is (d+1) % DirectionCount.
//   - Grid: immutable rectangular matrix of Empty/Wall cells, built via
//     New (typed cells) or Parse (raw text lines with marker extraction).
//   - Neighbors: in-bounds adjacent Steps in canonical direction order,
//     the tie-breaking foundation for every search in gridkit.
//
// Why:
//
//   - Maze and map solvers: one bounds-checked grid shared by BFS,
//     Dijkstra, patrol simulation, and region analysis.
//   - Deterministic searches: a single canonical neighbor order makes
//     equal-cost tie-breaking reproducible across runs.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - InBounds, CellAt, Walkable, Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingMarker: required start/goal marker absent
//     (only with WithRequireMarkers).
package grid
