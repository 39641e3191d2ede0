package hhfix

import (
	"runtime"

	"github.com/reusee/handheld/hhvm"
	"golang.org/x/sync/errgroup"
)

// searchParallel runs every candidate, then picks the lowest terminating
// index, so the answer matches the sequential search.
func searchParallel(program hhvm.Program, opts Options) (Fix, bool) {
	type candidate struct {
		index   int
		flipped hhvm.Instruction
	}
	var candidates []candidate
	for i, flipped := range Candidates(program) {
		candidates = append(candidates, candidate{i, flipped})
	}
	if len(candidates) == 0 {
		return Fix{}, false
	}

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	results := make([]hhvm.Result, len(candidates))
	var g errgroup.Group
	g.SetLimit(limit)
	for n, c := range candidates {
		g.Go(func() error {
			res := hhvm.Run(program.With(c.index, c.flipped))
			opts.observe(c.index, res)
			results[n] = res
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	for n, res := range results {
		if res.Terminated() {
			c := candidates[n]
			return Fix{
				Index:  c.index,
				From:   program[c.index],
				To:     c.flipped,
				Result: res,
			}, true
		}
	}
	return Fix{}, false
}
