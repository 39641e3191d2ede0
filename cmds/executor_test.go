package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var n int
	executor.Define("+n", Func(func() {
		n = 42
	}))
	executor.Define("n", Func(func(i int) {
		n = i
	}))

	if err := executor.Execute([]string{"+n"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %v", n)
	}
	if err := executor.Execute([]string{"n", "-3"}); err != nil {
		t.Fatal(err)
	}
	if n != -3 {
		t.Fatalf("got %v", n)
	}
	if err := executor.Execute([]string{"n", "x"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"n"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"foo"}); err == nil {
		t.Fatal("should error")
	}
}

func TestExecutor_Optional(t *testing.T) {
	executor := NewExecutor()

	var paths []string
	var debug bool
	executor.Define("run", Func(func(path *string) {
		if path == nil {
			paths = append(paths, "<default>")
			return
		}
		paths = append(paths, *path)
	}))
	executor.Define("-debug", Func(func() {
		debug = true
	}))

	if err := executor.Execute([]string{"run", "-debug", "run", "a.txt", "run"}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(paths, ","); got != "<default>,a.txt,<default>" {
		t.Fatalf("got %q", got)
	}
	if !debug {
		t.Fatal()
	}
}

func TestExecutor_Error(t *testing.T) {
	executor := NewExecutor()
	errFoo := errors.New("foo")
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}

func TestExecutor_Sub(t *testing.T) {
	executor := NewExecutor()
	var got []string
	executor.Define("search", Sub(map[string]*Command{
		"strategy": Func(func(s string) {
			got = append(got, s)
		}),
	}))
	if err := executor.Execute([]string{"strategy", "x"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"search", "strategy", "shared"}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "shared" {
		t.Fatalf("got %v", got)
	}
}

func TestExecutor_Duplicated(t *testing.T) {
	executor := NewExecutor()
	executor.Define("a", Func(func() {}).Alias("b"))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("b", Func(func() {}))
	}()
}

func TestFunc_BadSignature(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 0 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fix", Func(func() {}).Desc("FIX"))
	executor.Define("tap", Sub(map[string]*Command{
		"step": Func(func() {}).Desc("STEP"),
	}).Desc("TAP"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	for _, want := range []string{
		"--help, -h, -help, help\tprint this usage",
		"fix\tFIX",
		"tap\tTAP",
		"  step\tSTEP",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}
