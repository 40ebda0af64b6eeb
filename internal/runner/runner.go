// Package runner drives a Life engine headlessly for a fixed number of
// generations, recording a population census and detecting cycles.
package runner

import (
	"context"
	"hash/fnv"

	"github.com/san-kum/golife/internal/life"
)

// Result holds the outcome of a headless run.
type Result struct {
	// Populations holds the live-cell count after each generation,
	// starting with the seed board at index 0.
	Populations []int
	// Generations is the number of steps actually executed.
	Generations int
	// Period is the cycle length when the board revisited an earlier
	// state (1 for still lifes, 2 for blinkers, ...); 0 when no cycle
	// was seen within the run.
	Period int
	// CycleAt is the generation at which the repeated state was first
	// re-observed; meaningless when Period is 0.
	CycleAt int
}

// Runner advances an engine generation by generation. It starts the
// engine on Run and stops it before returning, so the board is editable
// again afterwards.
type Runner struct {
	eng *life.Engine
}

func New(eng *life.Engine) *Runner {
	return &Runner{eng: eng}
}

// Run advances up to the given number of generations. Cancellation is
// checked between generations and returns ctx.Err. A detected cycle ends
// the run early; further generations would replay states already seen.
func (r *Runner) Run(ctx context.Context, generations int) (*Result, error) {
	res := &Result{
		Populations: make([]int, 0, generations+1),
	}
	seen := map[uint64]int{
		fingerprint(r.eng.Snapshot()): 0,
	}
	res.Populations = append(res.Populations, r.eng.Population())

	r.eng.Start()
	defer r.eng.Stop()

	for g := 1; g <= generations; g++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r.eng.Step()
		res.Generations = g
		res.Populations = append(res.Populations, r.eng.Population())

		fp := fingerprint(r.eng.Snapshot())
		if prev, ok := seen[fp]; ok {
			res.Period = g - prev
			res.CycleAt = g
			break
		}
		seen[fp] = g
	}

	return res, nil
}

// fingerprint hashes a grid snapshot. Collisions would misreport a cycle;
// FNV-1a over the raw cells is good enough for the board sizes involved.
func fingerprint(cells []uint8) uint64 {
	h := fnv.New64a()
	h.Write(cells)
	return h.Sum64()
}
