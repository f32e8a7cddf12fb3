// Package regions performs connected-component analysis on labeled
// grids: flood-fill labeling, perimeter measurement, and straight-side
// counting for area pricing.
//
// What:
//
//   - Build: one full-grid scan that flood-fills every 4-connected run
//     of equally labeled cells into a Region, accumulating its
//     perimeter (cell edges facing a foreign cell or the boundary).
//   - Region.Sides: merged straight perimeter segments; collinear
//     boundary edges count once, regardless of length.
//   - Region.Price / Region.BulkPrice: Area×Perimeter and Area×Sides,
//     derived on demand, never stored.
//
// Why:
//
//   - Fence pricing and map parcelization: cost by raw perimeter or by
//     discounted straight runs.
//   - Topology probes: rings, holes, and touching-corner regions fall
//     out of plain 4-connectivity.
//
// Implementation:
//
//   - The fill uses an explicit queue and a shared visited set; no
//     recursion, so region size never threatens the stack.
//
// Complexity:
//
//   - Build: O(W×H×4) time, O(W×H) memory.
//   - Sides: O(Area×4) time and memory per region.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular.
package regions
