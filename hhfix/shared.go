package hhfix

import "github.com/reusee/handheld/hhvm"

// searchShared traces the unmodified program once. A variant runs identically
// to the base program until its flipped index is first dispatched. Unreached
// candidates take the base result; reached ones resume from the recorded state.
func searchShared(program hhvm.Program, opts Options) (Fix, bool) {
	base := hhvm.NewVM(program)
	var order []int
	position := make(map[int]int)
	var accs []int64
	for step := range base.Trace {
		position[step.IP] = len(order)
		order = append(order, step.IP)
		accs = append(accs, step.Accumulator)
	}
	baseResult := base.Result()

	for i, flipped := range Candidates(program) {
		var res hhvm.Result
		if pos, ok := position[i]; ok {
			vm := hhvm.Resume(program.With(i, flipped), i, accs[pos], order[:pos])
			res = vm.Run()
		} else {
			res = baseResult
		}
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
