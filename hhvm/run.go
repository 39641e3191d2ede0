package hhvm

type Step struct {
	IP          int
	Instruction Instruction
	// Accumulator before the instruction is dispatched
	Accumulator int64
}

// Step performs one transition. It returns the terminal result and true once
// the machine has stopped; further calls return the same result.
func (v *VM) Step() (Result, bool) {
	if _, done := v.step(); done {
		return v.result, true
	}
	return Result{}, false
}

func (v *VM) step() (Step, bool) {
	if v.Done() {
		return Step{}, true
	}

	if v.IP == len(v.Program) {
		v.result = Terminated(v.Accumulator)
		return Step{}, true
	}
	if v.IP < 0 || v.IP >= len(v.Program) {
		v.result = Faulted(FaultInvalidJump, v.IP)
		return Step{}, true
	}
	if v.Visited[v.IP] {
		v.result = Looped(v.Accumulator)
		return Step{}, true
	}
	v.Visited[v.IP] = true

	inst := v.Program[v.IP]
	step := Step{
		IP:          v.IP,
		Instruction: inst,
		Accumulator: v.Accumulator,
	}

	switch inst.Op {
	case OpNop:
		v.IP++
	case OpAcc:
		v.Accumulator += int64(inst.Arg)
		v.IP++
	case OpJmp:
		v.IP += int(inst.Arg)
	default:
		v.result = Faulted(FaultInvalidOp, v.IP)
		return Step{}, true
	}

	return step, false
}

func (v *VM) Run() Result {
	for {
		if _, done := v.step(); done {
			return v.result
		}
	}
}

// Trace runs the machine, yielding every dispatched instruction.
// The terminal result is available from Result after the iteration ends.
func (v *VM) Trace(yield func(Step) bool) {
	for {
		step, done := v.step()
		if done {
			return
		}
		if !yield(step) {
			return
		}
	}
}
