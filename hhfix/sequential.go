package hhfix

import "github.com/reusee/handheld/hhvm"

func searchSequential(program hhvm.Program, opts Options) (Fix, bool) {
	for i, flipped := range Candidates(program) {
		res := hhvm.Run(program.With(i, flipped))
		opts.observe(i, res)
		if res.Terminated() {
			return Fix{
				Index:  i,
				From:   program[i],
				To:     flipped,
				Result: res,
			}, true
		}
	}
	return Fix{}, false
}
