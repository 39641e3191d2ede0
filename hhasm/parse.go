package hhasm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/reusee/e5"
	"github.com/reusee/handheld/hhvm"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	ErrSyntax  = errors.New("syntax error")
	ErrOperand = errors.New("bad operand")
)

var linePattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^(nop|acc|jmp) ([+-][0-9]+)$`)
})

type ParseError struct {
	Line int
	Text string
	Err  error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", p.Line, p.Text, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func ParseLine(line string) (hhvm.Instruction, error) {
	m := linePattern().FindStringSubmatch(line)
	if m == nil {
		return hhvm.Instruction{}, ErrSyntax
	}
	op, ok := hhvm.OpByName(m[1])
	if !ok {
		return hhvm.Instruction{}, ErrSyntax
	}
	arg, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return hhvm.Instruction{}, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	return op.With(int32(arg)), nil
}

// Parse reads one instruction per line. The first malformed line aborts parsing.
func Parse(r io.Reader) (hhvm.Program, error) {
	var program hhvm.Program
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		inst, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{
				Line: lineNo,
				Text: text,
				Err:  err,
			}
		}
		program = append(program, inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, wrap(err)
	}
	return program, nil
}

func ParseString(src string) (hhvm.Program, error) {
	return Parse(strings.NewReader(src))
}

func ParseFile(path string) (hhvm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	program, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return program, nil
}
