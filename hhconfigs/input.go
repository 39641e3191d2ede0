package hhconfigs

import (
	"cmp"

	"github.com/reusee/handheld/cmds"
	"github.com/reusee/handheld/configs"
)

const DefaultInput = "input/08.txt"

// Input is the program path used when a command is given none.
type Input string

var inputFlag = cmds.Var[string]("-input")

func (Module) Input(
	loader configs.Loader,
) Input {
	return Input(cmp.Or(
		*inputFlag,
		configs.First[string](loader, "input"),
		DefaultInput,
	))
}
