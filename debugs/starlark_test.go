package debugs

import (
	"testing"

	"github.com/reusee/handheld/hhvm"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type fix struct {
		Index  int
		To     hhvm.Instruction
		hidden int
	}

	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "None"},
		{"bool", true, "True"},
		{"string", "jmp", `"jmp"`},
		{"int", 42, "42"},
		{"int64", int64(-4), "-4"},
		{"uint8", uint8(3), "3"},
		{"op", hhvm.OpJmp, "3"},
		{"instruction", hhvm.OpJmp.With(-4), `{"op": "jmp", "arg": -4, "text": "jmp -4"}`},
		{"looped", hhvm.Looped(5), `{"outcome": "looped", "accumulator": 5}`},
		{"fault", hhvm.Faulted(hhvm.FaultInvalidJump, 14), `{"outcome": "fault", "fault": "invalid jump", "ip": 14}`},
		{"program", hhvm.Program{hhvm.OpNop.With(0), hhvm.OpAcc.With(1)}, `[{"op": "nop", "arg": 0, "text": "nop +0"}, {"op": "acc", "arg": 1, "text": "acc +1"}]`},
		{"struct", fix{Index: 7, To: hhvm.OpNop.With(-4), hidden: 1}, `{"Index": 7, "To": {"op": "nop", "arg": -4, "text": "nop -4"}}`},
		{"pointer", &fix{Index: 1}, `{"Index": 1, "To": {"op": "Op(0)", "arg": 0, "text": "Op(0) +0"}}`},
		{"nil pointer", (*fix)(nil), "None"},
		{"map", map[string]int{"a": 1}, `{"a": 1}`},
		{"starlark", starlark.String("x"), `"x"`},
	}

	for _, c := range cases {
		got := toStarlarkValue(c.input).String()
		if got != c.want {
			t.Fatalf("%s: got %s", c.name, got)
		}
	}
}

func TestToStarlarkValue_Unsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	toStarlarkValue(make(chan int))
}

func TestToStarlarkDict(t *testing.T) {
	d := toStarlarkDict(map[string]any{
		"result": hhvm.Terminated(8),
		"index":  7,
	})
	if got := d["index"].String(); got != "7" {
		t.Fatalf("got %v", got)
	}
	if got := d["result"].String(); got != `{"outcome": "terminated", "accumulator": 8}` {
		t.Fatalf("got %v", got)
	}
}
