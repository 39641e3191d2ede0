package hhvm

import "testing"

func BenchmarkRun(b *testing.B) {
	// every jmp skips the following nop
	program := make(Program, 0, 3000)
	for range 1000 {
		program = append(program,
			OpAcc.With(1),
			OpJmp.With(2),
			OpNop.With(0),
		)
	}
	for b.Loop() {
		if res := Run(program); res != Terminated(1000) {
			b.Fatalf("got %v", res)
		}
	}
}
