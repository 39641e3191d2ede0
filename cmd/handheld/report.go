package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/handheld/hhfix"
	"github.com/reusee/handheld/hhvm"
)

func partOne(result hhvm.Result) (string, bool) {
	switch result.Outcome {
	case hhvm.OutcomeLooped:
		return fmt.Sprint(result.Accumulator), true
	case hhvm.OutcomeTerminated:
		return fmt.Sprintf("program terminated without looping (accumulator %d)", result.Accumulator), false
	}
	return result.String(), false
}

type Report func(ctx context.Context, program hhvm.Program) error

func (Module) Report(
	output Output,
	repair hhfix.Repair,
) Report {
	return func(ctx context.Context, program hhvm.Program) error {
		result := hhvm.Run(program)
		if msg, ok := partOne(result); ok {
			fmt.Fprintf(output, "✔ Part one: %s\n", msg)
		} else {
			fmt.Fprintf(output, "❌ Part one: %s\n", msg)
		}

		if result.Terminated() {
			fmt.Fprintf(output, "✔ Part two: no repair needed (accumulator %d)\n", result.Accumulator)
			return nil
		}
		fix, err := repair(ctx, program)
		if errors.Is(err, hhfix.ErrNoFixFound) {
			fmt.Fprintf(output, "❌ Part two: %v\n", hhfix.ErrNoFixFound)
			return nil
		} else if err != nil {
			return err
		}
		fmt.Fprintf(output, "✔ Part two: %d\n", fix.Accumulator())
		return nil
	}
}

type Trace func(program hhvm.Program)

func (Module) Trace(
	output Output,
) Trace {
	return func(program hhvm.Program) {
		vm := hhvm.NewVM(program)
		for step := range vm.Trace {
			fmt.Fprintf(output, "%6d  %-12s acc %d\n", step.IP, step.Instruction, step.Accumulator)
		}
		fmt.Fprintln(output, vm.Result())
	}
}
