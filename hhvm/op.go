package hhvm

import "fmt"

type Op uint8

const (
	OpNop Op = iota + 1
	OpAcc
	OpJmp
)

var opNames = [...]string{
	OpNop: "nop",
	OpAcc: "acc",
	OpJmp: "jmp",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

func (o Op) With(arg int32) Instruction {
	return Instruction{
		Op:  o,
		Arg: arg,
	}
}

// OpByName maps a mnemonic to its Op.
func OpByName(name string) (Op, bool) {
	switch name {
	case "nop":
		return OpNop, true
	case "acc":
		return OpAcc, true
	case "jmp":
		return OpJmp, true
	}
	return 0, false
}
