package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/handheld/cmds"
	"github.com/reusee/handheld/debugs"
	"github.com/reusee/handheld/hhfix"
	"github.com/reusee/handheld/hhvm"
	"github.com/reusee/handheld/modes"
	"github.com/reusee/handheld/procs"
)

type env struct {
	ctx   context.Context
	scope dscope.Scope
}

type action = procs.Proc[env]

var actions []action

func define(name string, desc string, fn func(path string) action) {
	cmds.Define(name, cmds.Func(func(path *string) {
		var p string
		if path != nil {
			p = *path
		}
		actions = append(actions, fn(p))
	}).Desc(desc))
}

func init() {
	define("report", "run as-is, then search for a repair (default)", reportAction)
	define("run", "run the program as-is", runAction)
	define("fix", "search for a single-instruction repair", fixAction)
	define("trace", "print every dispatched instruction", traceAction)
	define("tap", "open a starlark REPL on the program", tapAction)
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(actions) == 0 {
		actions = append(actions, reportAction(""))
	}
	if err := execute(context.Background(), dscope.New(
		new(Module),
		modes.ForProduction(),
	), actions); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, scope dscope.Scope, actions []action) (err error) {
	// providers report configuration errors by panicking
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
				return
			}
			panic(p)
		}
	}()
	return procs.Drive[env](env{
		ctx:   ctx,
		scope: scope,
	}, procs.Procs[env](actions))
}

type programFunc func(ctx context.Context, program hhvm.Program, scope dscope.Scope) error

func withProgram(path string, fn programFunc) action {
	return procs.Func[env](func(e env) (_ procs.Proc[env], err error) {
		e.scope.Call(func(load Load) {
			var program hhvm.Program
			program, err = load(path)
			if err != nil {
				return
			}
			err = fn(e.ctx, program, e.scope)
		})
		return nil, err
	})
}

func reportAction(path string) action {
	return withProgram(path, func(ctx context.Context, program hhvm.Program, scope dscope.Scope) (err error) {
		scope.Call(func(report Report) {
			err = report(ctx, program)
		})
		return
	})
}

func runAction(path string) action {
	return withProgram(path, func(_ context.Context, program hhvm.Program, scope dscope.Scope) error {
		scope.Call(func(output Output) {
			fmt.Fprintln(output, hhvm.Run(program))
		})
		return nil
	})
}

func fixAction(path string) action {
	return withProgram(path, func(ctx context.Context, program hhvm.Program, scope dscope.Scope) (err error) {
		scope.Call(func(repair hhfix.Repair, output Output) {
			var fix hhfix.Fix
			fix, err = repair(ctx, program)
			if err != nil {
				return
			}
			fmt.Fprintln(output, fix)
		})
		return
	})
}

func traceAction(path string) action {
	return withProgram(path, func(_ context.Context, program hhvm.Program, scope dscope.Scope) error {
		scope.Call(func(trace Trace) {
			trace(program)
		})
		return nil
	})
}

func tapAction(path string) action {
	return withProgram(path, func(ctx context.Context, program hhvm.Program, scope dscope.Scope) error {
		scope.Call(func(tap debugs.Tap) {
			tap(ctx, "program", tapGlobals(program))
		})
		return nil
	})
}

func tapGlobals(program hhvm.Program) map[string]any {
	return map[string]any{
		"program": program,
		"result":  hhvm.Run(program),
		"flip": func(index int) string {
			if index < 0 || index >= len(program) {
				return fmt.Sprintf("index out of range: %d", index)
			}
			flipped, ok := program[index].Flip()
			if !ok {
				return fmt.Sprintf("not flippable: %s", program[index])
			}
			return hhvm.Run(program.With(index, flipped)).String()
		},
		"fix": func() string {
			fix, ok := hhfix.Search(program, hhfix.Options{})
			if !ok {
				return hhfix.ErrNoFixFound.Error()
			}
			return fix.String()
		},
	}
}
