package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/handheld/debugs"
	"github.com/reusee/handheld/hhasm"
	"github.com/reusee/handheld/hhconfigs"
	"github.com/reusee/handheld/hhfix"
	"github.com/reusee/handheld/hhvm"
	"github.com/reusee/handheld/logs"
)

type Module struct {
	dscope.Module
	HHFix  hhfix.Module
	Debugs debugs.Module
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// Load parses the program at path, or at the configured input when path is empty.
type Load func(path string) (hhvm.Program, error)

func (Module) Load(
	input hhconfigs.Input,
	logger logs.Logger,
) Load {
	return func(path string) (hhvm.Program, error) {
		if path == "" {
			path = string(input)
		}
		program, err := hhasm.ParseFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("program loaded",
			"path", path,
			"instructions", len(program),
		)
		return program, nil
	}
}
