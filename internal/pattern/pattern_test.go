package pattern

import (
	"errors"
	"testing"

	"github.com/san-kum/golife/internal/life"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if len(p.Cells) == 0 {
			t.Errorf("pattern %q has no cells", name)
		}
		w, h := p.Size()
		if w <= 0 || h <= 0 {
			t.Errorf("pattern %q size = %dx%d", name, w, h)
		}
	}

	if _, err := Lookup("nonexistent"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Lookup(nonexistent) error = %v, want ErrUnknownPattern", err)
	}
}

func TestPlace(t *testing.T) {
	e, err := life.New(10, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	p, _ := Lookup("block")
	if err := Place(e, p, 3, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	for _, c := range p.Cells {
		alive, err := e.Cell(3+c[0], 4+c[1])
		if err != nil {
			t.Fatalf("Cell failed: %v", err)
		}
		if !alive {
			t.Errorf("cell (%d,%d) dead after placement", 3+c[0], 4+c[1])
		}
	}
	if e.Population() != len(p.Cells) {
		t.Errorf("population = %d, want %d", e.Population(), len(p.Cells))
	}
}

func TestPlaceWraps(t *testing.T) {
	e, err := life.New(5, 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// A block at the far corner spills onto the opposite edges.
	p, _ := Lookup("block")
	if err := Place(e, p, 4, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	for _, c := range [][2]int{{4, 4}, {0, 4}, {4, 0}, {0, 0}} {
		alive, _ := e.Cell(c[0], c[1])
		if !alive {
			t.Errorf("wrapped cell (%d,%d) dead after placement", c[0], c[1])
		}
	}
}

func TestPlaceRefusedWhileRunning(t *testing.T) {
	e, err := life.New(10, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.Start()

	p, _ := Lookup("blinker")
	if err := Place(e, p, 1, 1); !errors.Is(err, life.ErrEditWhileRunning) {
		t.Errorf("Place while running: error = %v, want ErrEditWhileRunning", err)
	}
}

func TestGliderTranslates(t *testing.T) {
	e, err := life.New(12, 12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p, _ := Lookup("glider")
	if err := Place(e, p, 2, 2); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	// After 4 generations a glider reappears shifted one cell down-right.
	e.Start()
	for i := 0; i < 4; i++ {
		e.Step()
	}
	e.Stop()

	if e.Population() != len(p.Cells) {
		t.Fatalf("population after 4 steps = %d, want %d", e.Population(), len(p.Cells))
	}
	for _, c := range p.Cells {
		alive, _ := e.Cell(3+c[0], 3+c[1])
		if !alive {
			t.Errorf("glider cell (%d,%d) dead after translation", 3+c[0], 3+c[1])
		}
	}
}

func TestCentered(t *testing.T) {
	e, err := life.New(20, 20)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p, _ := Lookup("pulsar")
	if err := Centered(e, p); err != nil {
		t.Fatalf("Centered failed: %v", err)
	}
	pw, ph := p.Size()
	ox, oy := (20-pw)/2, (20-ph)/2
	for _, c := range p.Cells {
		alive, _ := e.Cell(ox+c[0], oy+c[1])
		if !alive {
			t.Errorf("pulsar cell (%d,%d) dead after centered placement", ox+c[0], oy+c[1])
		}
	}
}
