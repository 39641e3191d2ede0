package hhvm

import "fmt"

type VM struct {
	Program     Program
	IP          int
	Accumulator int64
	Visited     []bool

	result Result
}

func NewVM(program Program) *VM {
	return &VM{
		Program: program,
		Visited: make([]bool, len(program)),
	}
}

// Resume creates a VM positioned at ip with the given accumulator, as if the
// instructions at the visited indices had already been executed.
// Every visited index must lie in [0, len(program)); Resume panics otherwise.
// ip itself is not checked, the first Step reports it like any other jump.
func Resume(program Program, ip int, acc int64, visited []int) *VM {
	v := NewVM(program)
	v.IP = ip
	v.Accumulator = acc
	for _, i := range visited {
		if i < 0 || i >= len(program) {
			panic(fmt.Errorf("resume: visited index %d out of range [0, %d)", i, len(program)))
		}
		v.Visited[i] = true
	}
	return v
}

// Result returns the terminal result, or the zero Result while still running.
func (v *VM) Result() Result {
	return v.result
}

func (v *VM) Done() bool {
	return v.result.Outcome != 0
}

// Run executes the program once and returns its terminal result.
func Run(program Program) Result {
	return NewVM(program).Run()
}
