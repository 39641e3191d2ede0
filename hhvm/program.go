package hhvm

import "strings"

type Program []Instruction

// With returns a copy of p with the instruction at index replaced.
func (p Program) With(index int, inst Instruction) Program {
	ret := make(Program, len(p))
	copy(ret, p)
	ret[index] = inst
	return ret
}

func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p {
		b.WriteString(inst.String())
		b.WriteByte('\n')
	}
	return b.String()
}
