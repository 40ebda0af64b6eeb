package life

import (
	"bytes"
	"errors"
	"testing"
)

func mustEngine(t *testing.T, w, h int) *Engine {
	t.Helper()
	e, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d,%d) failed: %v", w, h, err)
	}
	return e
}

func setCells(t *testing.T, e *Engine, coords [][2]int) {
	t.Helper()
	for _, c := range coords {
		if err := e.SetCell(c[0], c[1], true); err != nil {
			t.Fatalf("SetCell(%d,%d) failed: %v", c[0], c[1], err)
		}
	}
}

func assertBoard(t *testing.T, e *Engine, alive map[[2]int]bool) {
	t.Helper()
	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			got, err := e.Cell(x, y)
			if err != nil {
				t.Fatalf("Cell(%d,%d) failed: %v", x, y, err)
			}
			want := alive[[2]int{x, y}]
			if got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"square", 10, 10, nil},
		{"non-square", 12, 10, nil},
		{"single cell", 1, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"both zero", 0, 0, ErrInvalidDimensions},
		{"negative", -3, 5, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d,%d) error = %v, want %v", tt.w, tt.h, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if e.Width() != tt.w || e.Height() != tt.h {
				t.Errorf("dimensions = %dx%d, want %dx%d", e.Width(), e.Height(), tt.w, tt.h)
			}
			if e.IsRunning() {
				t.Error("new engine should be stopped")
			}
			if e.Population() != 0 {
				t.Errorf("new engine population = %d, want 0", e.Population())
			}
		})
	}
}

func TestCellBounds(t *testing.T) {
	e := mustEngine(t, 4, 3)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if _, err := e.Cell(x, y); err != nil {
				t.Errorf("Cell(%d,%d) failed on 4x3 board: %v", x, y, err)
			}
		}
	}

	bad := [][2]int{{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, c := range bad {
		if _, err := e.Cell(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell(%d,%d) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestEditGuard(t *testing.T) {
	e := mustEngine(t, 5, 5)
	setCells(t, e, [][2]int{{1, 1}})
	before := e.Snapshot()

	e.Start()
	if err := e.ToggleCell(2, 2); !errors.Is(err, ErrEditWhileRunning) {
		t.Errorf("ToggleCell while running: error = %v, want ErrEditWhileRunning", err)
	}
	if err := e.SetCell(2, 2, true); !errors.Is(err, ErrEditWhileRunning) {
		t.Errorf("SetCell while running: error = %v, want ErrEditWhileRunning", err)
	}
	if err := e.Clear(); !errors.Is(err, ErrEditWhileRunning) {
		t.Errorf("Clear while running: error = %v, want ErrEditWhileRunning", err)
	}
	if err := e.Randomize(1); !errors.Is(err, ErrEditWhileRunning) {
		t.Errorf("Randomize while running: error = %v, want ErrEditWhileRunning", err)
	}
	if !bytes.Equal(before, e.Snapshot()) {
		t.Error("refused edits modified the grid")
	}

	// Bounds are checked before the run-state guard.
	if err := e.ToggleCell(9, 9); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ToggleCell out of bounds while running: error = %v, want ErrOutOfBounds", err)
	}

	e.Stop()
	if err := e.ToggleCell(2, 2); err != nil {
		t.Errorf("ToggleCell after stop failed: %v", err)
	}
	if err := e.SetCell(3, 3, true); err != nil {
		t.Errorf("SetCell after stop failed: %v", err)
	}
}

func TestStepNoOpWhileStopped(t *testing.T) {
	e := mustEngine(t, 5, 5)
	// A blinker would change on every running step.
	setCells(t, e, [][2]int{{1, 2}, {2, 2}, {3, 2}})
	before := e.Snapshot()

	for i := 0; i < 10; i++ {
		e.Step()
	}
	if !bytes.Equal(before, e.Snapshot()) {
		t.Error("Step while stopped modified the grid")
	}
}

func TestToroidalWrapNeighbors(t *testing.T) {
	e := mustEngine(t, 3, 3)
	setCells(t, e, [][2]int{{0, 0}})

	// (0,0)'s toroidal neighborhood includes the far corner and both far
	// edges; each of those cells must in turn see (0,0) as a neighbor.
	for _, c := range [][2]int{{2, 2}, {2, 0}, {0, 2}, {1, 1}} {
		if n := e.liveNeighbors(c[0], c[1]); n != 1 {
			t.Errorf("liveNeighbors(%d,%d) = %d, want 1", c[0], c[1], n)
		}
	}

	// A lone cell dies and cannot birth anything.
	e.Start()
	e.Step()
	e.Stop()
	assertBoard(t, e, nil)
}

func TestWrapUsesBothDimensions(t *testing.T) {
	// Non-square board: column wrap by width, row wrap by height. On 5x3,
	// (0,0) and (4,0) are horizontal neighbors; (0,0) and (0,2) vertical.
	e := mustEngine(t, 5, 3)
	setCells(t, e, [][2]int{{4, 0}, {0, 2}})

	if n := e.liveNeighbors(0, 0); n != 2 {
		t.Errorf("liveNeighbors(0,0) on 5x3 = %d, want 2", n)
	}
}

func TestBlockStillLife(t *testing.T) {
	e := mustEngine(t, 5, 5)
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	setCells(t, e, block)

	want := map[[2]int]bool{}
	for _, c := range block {
		want[c] = true
	}

	e.Start()
	for i := 0; i < 8; i++ {
		e.Step()
	}
	e.Stop()
	assertBoard(t, e, want)
}

func TestBlinkerOscillation(t *testing.T) {
	e := mustEngine(t, 5, 5)
	setCells(t, e, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	e.Start()
	e.Step()
	assertBoard(t, e, vertical)
	e.Step()
	assertBoard(t, e, horizontal)
	e.Stop()
}

func TestTogglePairing(t *testing.T) {
	e := mustEngine(t, 4, 4)

	if err := e.ToggleCell(1, 1); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if alive, _ := e.Cell(1, 1); !alive {
		t.Error("cell should be alive after one toggle")
	}
	if err := e.ToggleCell(1, 1); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if alive, _ := e.Cell(1, 1); alive {
		t.Error("cell should be dead after two toggles")
	}

	before := e.Snapshot()
	if err := e.SetCell(2, 2, true); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	first := e.Snapshot()
	if err := e.SetCell(2, 2, true); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !bytes.Equal(first, e.Snapshot()) {
		t.Error("second identical SetCell changed the grid")
	}
	if bytes.Equal(before, first) {
		t.Error("first SetCell should have changed the grid")
	}
}

func TestRunStateTransitions(t *testing.T) {
	e := mustEngine(t, 3, 3)
	setCells(t, e, [][2]int{{1, 1}})
	before := e.Snapshot()

	e.Start()
	e.Start()
	if !e.IsRunning() {
		t.Error("engine should be running after Start; Start")
	}
	e.Stop()
	e.Stop()
	if e.IsRunning() {
		t.Error("engine should be stopped after Stop; Stop")
	}
	if !bytes.Equal(before, e.Snapshot()) {
		t.Error("run-state transitions modified the grid")
	}

	e.ToggleRun()
	if !e.IsRunning() {
		t.Error("ToggleRun from stopped should run")
	}
	e.ToggleRun()
	if e.IsRunning() {
		t.Error("ToggleRun from running should stop")
	}
}

func TestRunStateString(t *testing.T) {
	if Stopped.String() != "stopped" || Running.String() != "running" {
		t.Errorf("RunState strings = %q, %q", Stopped, Running)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := mustEngine(t, 3, 3)
	snap := e.Snapshot()
	snap[0] = 1
	if alive, _ := e.Cell(0, 0); alive {
		t.Error("mutating a snapshot modified the engine grid")
	}
}

func TestClearAndRandomize(t *testing.T) {
	e := mustEngine(t, 8, 8)
	if err := e.Randomize(42); err != nil {
		t.Fatalf("randomize failed: %v", err)
	}
	if e.Population() == 0 || e.Population() == 64 {
		t.Errorf("randomized population = %d, want mixed board", e.Population())
	}

	twin := mustEngine(t, 8, 8)
	if err := twin.Randomize(42); err != nil {
		t.Fatalf("randomize failed: %v", err)
	}
	if !bytes.Equal(e.Snapshot(), twin.Snapshot()) {
		t.Error("same seed should produce the same board")
	}

	if err := e.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if e.Population() != 0 {
		t.Errorf("population after Clear = %d, want 0", e.Population())
	}
}

func TestPopulation(t *testing.T) {
	e := mustEngine(t, 4, 4)
	setCells(t, e, [][2]int{{0, 0}, {1, 1}, {2, 2}})
	if e.Population() != 3 {
		t.Errorf("population = %d, want 3", e.Population())
	}
}
