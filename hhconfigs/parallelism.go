package hhconfigs

import (
	"cmp"
	"fmt"
	"runtime"

	"github.com/reusee/handheld/cmds"
	"github.com/reusee/handheld/configs"
)

// Parallelism bounds the number of concurrent candidate runs.
type Parallelism int

var parallelismFlag = cmds.Var[int]("-parallelism")

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	if *parallelismFlag < 0 {
		panic(fmt.Errorf("bad parallelism: %d", *parallelismFlag))
	}
	return Parallelism(cmp.Or(
		*parallelismFlag,
		configs.First[int](loader, "parallelism"),
		runtime.NumCPU(),
	))
}
