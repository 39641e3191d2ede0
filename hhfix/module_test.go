package hhfix

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/handheld/hhconfigs"
	"github.com/reusee/handheld/hhvm"
	"github.com/reusee/handheld/logs"
	"github.com/reusee/handheld/modes"
)

func newTestScope(t *testing.T, buf *bytes.Buffer, strategy hhconfigs.Strategy) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() hhconfigs.SearchDirs {
			return nil
		},
		func() hhconfigs.Strategy {
			return strategy
		},
	)
}

func TestRepair(t *testing.T) {
	for _, strategy := range hhconfigs.Strategies {
		buf := new(bytes.Buffer)
		newTestScope(t, buf, strategy).Call(func(
			repair Repair,
		) {
			fix, err := repair(t.Context(), sampleProgram())
			if err != nil {
				t.Fatal(err)
			}
			if fix.Index != 7 || fix.Accumulator() != 8 {
				t.Fatalf("got %v", fix)
			}
			out := buf.String()
			if !strings.Contains(out, "msg=\"fix found\"") {
				t.Fatalf("got %s", out)
			}
			if !strings.Contains(out, "strategy="+string(strategy)) {
				t.Fatalf("got %s", out)
			}
			if !strings.Contains(out, "msg=candidate index=7") {
				t.Fatalf("got %s", out)
			}
		})
	}
}

func TestRepair_NoFix(t *testing.T) {
	buf := new(bytes.Buffer)
	newTestScope(t, buf, hhconfigs.StrategyShared).Call(func(
		repair Repair,
	) {
		_, err := repair(t.Context(), hhvm.Program{
			hhvm.OpAcc.With(1),
		})
		if !errors.Is(err, ErrNoFixFound) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(buf.String(), "msg=\"no fix found\" ") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
