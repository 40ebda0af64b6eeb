package life

import (
	"fmt"
	"math/rand"
)

// RunState reports whether the simulation is advancing.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Engine owns a toroidal Life board and its run/stop state. Cells live in
// a flat row-major buffer indexed by y*width + x; a second buffer of the
// same size receives each new generation so that every cell's update is
// computed from a snapshot of the prior one.
type Engine struct {
	width  int
	height int
	cells  []uint8
	next   []uint8
	state  RunState
}

// New returns a stopped, all-dead engine with the given dimensions.
func New(width, height int) (*Engine, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Engine{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
		next:   make([]uint8, width*height),
	}, nil
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.width }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.height }

// IsRunning reports whether the simulation is advancing.
func (e *Engine) IsRunning() bool { return e.state == Running }

// Start begins the simulation. Starting a running engine is a no-op.
func (e *Engine) Start() { e.state = Running }

// Stop halts the simulation. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() { e.state = Stopped }

// ToggleRun flips between Stopped and Running.
func (e *Engine) ToggleRun() {
	if e.state == Running {
		e.state = Stopped
	} else {
		e.state = Running
	}
}

// Cell reports whether the cell at column x, row y is alive.
func (e *Engine) Cell(x, y int) (bool, error) {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, e.width, e.height)
	}
	return e.cells[y*e.width+x] == 1, nil
}

// guardEdit validates an edit at (x, y). Bounds are checked before the
// run-state guard: out-of-range coordinates are a caller bug regardless
// of run state.
func (e *Engine) guardEdit(x, y int) error {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, e.width, e.height)
	}
	if e.state == Running {
		return ErrEditWhileRunning
	}
	return nil
}

// ToggleCell flips the cell at (x, y). Edits are refused while running.
func (e *Engine) ToggleCell(x, y int) error {
	if err := e.guardEdit(x, y); err != nil {
		return err
	}
	e.cells[y*e.width+x] = 1 - e.cells[y*e.width+x]
	return nil
}

// SetCell sets the cell at (x, y) to the given value. Edits are refused
// while running.
func (e *Engine) SetCell(x, y int, alive bool) error {
	if err := e.guardEdit(x, y); err != nil {
		return err
	}
	var v uint8
	if alive {
		v = 1
	}
	e.cells[y*e.width+x] = v
	return nil
}

// Clear kills every cell. Refused while running.
func (e *Engine) Clear() error {
	if e.state == Running {
		return ErrEditWhileRunning
	}
	for i := range e.cells {
		e.cells[i] = 0
	}
	return nil
}

// Randomize seeds each cell alive with probability 1/2, deterministically
// for a given seed. Refused while running.
func (e *Engine) Randomize(seed int64) error {
	return e.RandomizeDensity(seed, 0.5)
}

// RandomizeDensity seeds each cell alive with the given probability.
// Refused while running.
func (e *Engine) RandomizeDensity(seed int64, density float64) error {
	if e.state == Running {
		return ErrEditWhileRunning
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range e.cells {
		if rng.Float64() < density {
			e.cells[i] = 1
		} else {
			e.cells[i] = 0
		}
	}
	return nil
}

// Step advances the board by one generation. While stopped it returns
// immediately with the grid unchanged. While running, every cell's next
// value is computed from the current generation into the spare buffer,
// then the buffers swap; no update observes a neighbor from the new
// generation.
func (e *Engine) Step() {
	if e.state != Running {
		return
	}
	w, h := e.width, e.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := e.liveNeighbors(x, y)
			idx := y*w + x
			alive := e.cells[idx] == 1
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				e.next[idx] = 1
			} else {
				e.next[idx] = 0
			}
		}
	}
	e.cells, e.next = e.next, e.cells
}

// liveNeighbors counts live cells among the 8 toroidal neighbors of
// (x, y). Column offsets wrap by width and row offsets by height
// independently; the +w/+h terms keep the modulus non-negative for the
// -1 offsets.
func (e *Engine) liveNeighbors(x, y int) int {
	w, h := e.width, e.height
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			n += int(e.cells[ny*w+nx])
		}
	}
	return n
}

// Snapshot returns a copy of the current grid. The engine's own buffer is
// never handed out.
func (e *Engine) Snapshot() []uint8 {
	c := make([]uint8, len(e.cells))
	copy(c, e.cells)
	return c
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	n := 0
	for _, v := range e.cells {
		n += int(v)
	}
	return n
}
