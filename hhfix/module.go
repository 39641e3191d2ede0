package hhfix

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/handheld/hhconfigs"
	"github.com/reusee/handheld/hhvm"
	"github.com/reusee/handheld/logs"
)

type Module struct {
	dscope.Module
	HHConfigs hhconfigs.Module
}

// Repair searches for a single-fault repair with the configured strategy.
// It returns ErrNoFixFound when none exists.
type Repair func(ctx context.Context, program hhvm.Program) (Fix, error)

func (Module) Repair(
	logger logs.Logger,
	newSpan logs.NewSpan,
	strategyName hhconfigs.Strategy,
	parallelism hhconfigs.Parallelism,
) Repair {
	strategy, err := ParseStrategy(string(strategyName))
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, program hhvm.Program) (Fix, error) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "repair search",
			"strategy", strategy,
			"instructions", len(program),
		)
		start := time.Now()

		var candidates atomic.Int64
		fix, ok := Search(program, Options{
			Strategy:    strategy,
			Parallelism: int(parallelism),
			OnCandidate: func(index int, result hhvm.Result) {
				candidates.Add(1)
				logger.DebugContext(ctx, "candidate",
					"index", index,
					"result", result,
				)
			},
		})
		if !ok {
			logger.WarnContext(ctx, "no fix found",
				"candidates", candidates.Load(),
				"duration", time.Since(start),
			)
			return Fix{}, logs.WrapSpan(ctx, ErrNoFixFound)
		}
		logger.InfoContext(ctx, "fix found",
			"index", fix.Index,
			"from", fix.From,
			"to", fix.To,
			"accumulator", fix.Accumulator(),
			"candidates", candidates.Load(),
			"duration", time.Since(start),
		)
		return fix, nil
	}
}
