// Package life implements the simulation core for Conway's Game of Life
// on a finite toroidal board.
//
// The package defines a single component, [Engine], which owns the grid
// and the run/stop state:
//
//   - [Engine.Step]: advance one generation (no-op while stopped)
//   - [Engine.ToggleCell] / [Engine.SetCell]: edit cells while stopped
//   - [Engine.Start] / [Engine.Stop]: gate the simulation
//
// The board is stored as a flat row-major slice of width*height cells,
// indexed by y*width + x. Opposite edges are adjacent: neighbor lookups
// wrap column offsets by the width and row offsets by the height, so the
// board has no edges.
//
// # Example
//
//	eng, _ := life.New(12, 10)
//	eng.ToggleCell(5, 5)
//	eng.Start()
//	eng.Step()
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Every operation runs to completion
// synchronously; callers driving the engine from multiple goroutines must
// serialize access themselves.
package life
