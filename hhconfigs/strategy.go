package hhconfigs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/reusee/handheld/cmds"
	"github.com/reusee/handheld/configs"
)

type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
	StrategyShared     Strategy = "shared"
)

var Strategies = []Strategy{
	StrategySequential,
	StrategyParallel,
	StrategyShared,
}

var strategyFlag = cmds.Var[string]("-strategy")

func (Module) Strategy(
	loader configs.Loader,
) Strategy {
	s := Strategy(cmp.Or(
		*strategyFlag,
		configs.First[string](loader, "strategy"),
		string(StrategySequential),
	))
	if !slices.Contains(Strategies, s) {
		panic(fmt.Errorf("unknown strategy: %s", s))
	}
	return s
}
