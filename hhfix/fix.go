package hhfix

import (
	"errors"
	"fmt"

	"github.com/reusee/handheld/hhvm"
)

var ErrNoFixFound = errors.New("no fix found")

// Fix is a single-instruction repair and the result of running it.
type Fix struct {
	Index  int
	From   hhvm.Instruction
	To     hhvm.Instruction
	Result hhvm.Result
}

func (f Fix) Accumulator() int64 {
	return f.Result.Accumulator
}

func (f Fix) String() string {
	return fmt.Sprintf("%d: %s -> %s, %s", f.Index, f.From, f.To, f.Result)
}

type Strategy uint8

const (
	Sequential Strategy = iota + 1
	Parallel
	Shared
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Shared:
		return "shared"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{Sequential, Parallel, Shared} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy: %s", name)
}

// Options tunes a search. The zero value searches sequentially.
type Options struct {
	Strategy    Strategy
	Parallelism int
	// OnCandidate, if set, is called with each candidate and its result.
	// With the parallel strategy it may be called concurrently.
	OnCandidate func(index int, result hhvm.Result)
}

// Search returns the lowest-index single flip that makes program terminate.
// ok is false when no candidate terminates.
func Search(program hhvm.Program, opts Options) (fix Fix, ok bool) {
	switch opts.Strategy {
	case 0, Sequential:
		return searchSequential(program, opts)
	case Parallel:
		return searchParallel(program, opts)
	case Shared:
		return searchShared(program, opts)
	}
	panic(fmt.Errorf("bad strategy: %v", opts.Strategy))
}

// FindFix returns the accumulator of the first terminating variant.
func FindFix(program hhvm.Program) (int64, bool) {
	fix, ok := Search(program, Options{})
	if !ok {
		return 0, false
	}
	return fix.Accumulator(), true
}

func (o Options) observe(index int, result hhvm.Result) {
	if o.OnCandidate != nil {
		o.OnCandidate(index, result)
	}
}
