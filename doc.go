// Package gridkit is your in-memory toolkit for searching, simulating,
// and measuring rectangular grids, from shortest paths to region pricing.
//
// 🚀 What is gridkit?
//
//	A small, deterministic, zero-surprise library that brings together:
//		• Grid primitives: bounded cells, positions, cardinal directions
//		• Unweighted search: BFS shortest paths & reachability probes
//		• Weighted search: Dijkstra over (position, direction) states
//		  with turn penalties, including all-best-paths cell collection
//		• Patrol simulation: clockwise-bouncing walkers & loop detection
//		• Regions: flood-fill labeling, perimeter and side counting
//		• Trails: monotone-ascent path scoring over height grids
//		• Racing: wall-skip shortcut analysis along a single corridor
//
// ✨ Why choose gridkit?
//
//   - Deterministic – fixed neighbor order, reproducible tie-breaking
//   - Total functions – "no path" is data (sentinel errors), never a panic
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options and hooks on every search
//
// Everything is organized under focused subpackages:
//
//	grid/     – Grid, Position, Direction, Cell primitives & parsing
//	bfs/      – unweighted shortest paths, reachability, distance maps
//	dijkstra/ – turn-aware weighted search over (position, direction)
//	patrol/   – guard walkers, loop detection, obstacle trials
//	regions/  – connected-region labeling, perimeter & side pricing
//	trails/   – trailhead scores and ratings on height grids
//	racing/   – corridor distance indexing and shortcut counting
//
// Quick ASCII example:
//
//	    #####
//	    #S..#
//	    #.#.#
//	    #..G#
//	    #####
//
//	a 3×3 walkable maze where BFS finds a 4-step path from S to G.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
