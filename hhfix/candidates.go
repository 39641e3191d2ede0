package hhfix

import (
	"iter"

	"github.com/reusee/handheld/hhvm"
)

// Candidates yields, in ascending index order, every flippable instruction
// paired with its flipped form. acc instructions are never yielded.
func Candidates(program hhvm.Program) iter.Seq2[int, hhvm.Instruction] {
	return func(yield func(int, hhvm.Instruction) bool) {
		for i, inst := range program {
			flipped, ok := inst.Flip()
			if !ok {
				continue
			}
			if !yield(i, flipped) {
				return
			}
		}
	}
}
