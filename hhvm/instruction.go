package hhvm

import "fmt"

// Instruction is one decoded line. Arg is 32 bits wide so that summing every
// operand of any program that fits in memory stays within the int64 accumulator.
type Instruction struct {
	Op  Op
	Arg int32
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %+d", i.Op, i.Arg)
}

// Flip swaps nop and jmp, keeping the operand. acc is not flippable.
func (i Instruction) Flip() (Instruction, bool) {
	switch i.Op {
	case OpNop:
		return OpJmp.With(i.Arg), true
	case OpJmp:
		return OpNop.With(i.Arg), true
	}
	return i, false
}
