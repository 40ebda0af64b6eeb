// Package pattern provides named seed templates for the Life board.
package pattern

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/golife/internal/life"
)

// ErrUnknownPattern indicates a lookup for a pattern name that is not
// registered.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Pattern is a named set of live-cell coordinates relative to an origin.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

// Size returns the bounding width and height of the pattern.
func (p *Pattern) Size() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		if c[0]+1 > w {
			w = c[0] + 1
		}
		if c[1]+1 > h {
			h = c[1] + 1
		}
	}
	return w, h
}

var builtins = map[string]*Pattern{
	"block": {
		Name:        "block",
		Description: "2x2 still life",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"blinker": {
		Name:        "blinker",
		Description: "period-2 oscillator",
		Cells:       [][2]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"toad": {
		Name:        "toad",
		Description: "period-2 oscillator",
		Cells:       [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	"beacon": {
		Name:        "beacon",
		Description: "period-2 oscillator",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	},
	"glider": {
		Name:        "glider",
		Description: "diagonal spaceship, period 4",
		Cells:       [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	"pulsar": {
		Name:        "pulsar",
		Description: "period-3 oscillator",
		Cells: [][2]int{
			{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
			{0, 2}, {5, 2}, {7, 2}, {12, 2},
			{0, 3}, {5, 3}, {7, 3}, {12, 3},
			{0, 4}, {5, 4}, {7, 4}, {12, 4},
			{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
			{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
			{0, 8}, {5, 8}, {7, 8}, {12, 8},
			{0, 9}, {5, 9}, {7, 9}, {12, 9},
			{0, 10}, {5, 10}, {7, 10}, {12, 10},
			{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
		},
	},
	"r-pentomino": {
		Name:        "r-pentomino",
		Description: "long-lived methuselah",
		Cells:       [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
}

// Lookup returns the built-in pattern with the given name.
func Lookup(name string) (*Pattern, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names returns the registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place stamps the pattern onto the engine with its origin at (x, y).
// Coordinates wrap toroidally, matching the board's adjacency, so a stamp
// near an edge spills to the opposite side. Fails while the engine is
// running.
func Place(e *life.Engine, p *Pattern, x, y int) error {
	w, h := e.Width(), e.Height()
	for _, c := range p.Cells {
		cx := ((x+c[0])%w + w) % w
		cy := ((y+c[1])%h + h) % h
		if err := e.SetCell(cx, cy, true); err != nil {
			return fmt.Errorf("placing %s at (%d,%d): %w", p.Name, x, y, err)
		}
	}
	return nil
}

// Centered stamps the pattern in the middle of the board.
func Centered(e *life.Engine, p *Pattern) error {
	pw, ph := p.Size()
	return Place(e, p, (e.Width()-pw)/2, (e.Height()-ph)/2)
}
