package hhvm

import "fmt"

type Outcome uint8

const (
	OutcomeTerminated Outcome = iota + 1
	OutcomeLooped
	OutcomeFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTerminated:
		return "terminated"
	case OutcomeLooped:
		return "looped"
	case OutcomeFault:
		return "fault"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

type Fault uint8

const (
	FaultInvalidJump Fault = iota + 1
	FaultInvalidOp
)

func (f Fault) String() string {
	switch f {
	case FaultInvalidJump:
		return "invalid jump"
	case FaultInvalidOp:
		return "invalid opcode"
	}
	return fmt.Sprintf("Fault(%d)", uint8(f))
}

// Result is the terminal state of one run.
// Accumulator is meaningful for OutcomeTerminated and OutcomeLooped,
// Fault and IP for OutcomeFault.
type Result struct {
	Outcome     Outcome
	Accumulator int64
	Fault       Fault
	IP          int
}

func Terminated(acc int64) Result {
	return Result{
		Outcome:     OutcomeTerminated,
		Accumulator: acc,
	}
}

func Looped(acc int64) Result {
	return Result{
		Outcome:     OutcomeLooped,
		Accumulator: acc,
	}
}

func Faulted(fault Fault, ip int) Result {
	return Result{
		Outcome: OutcomeFault,
		Fault:   fault,
		IP:      ip,
	}
}

func (r Result) Terminated() bool {
	return r.Outcome == OutcomeTerminated
}

func (r Result) String() string {
	switch r.Outcome {
	case OutcomeTerminated, OutcomeLooped:
		return fmt.Sprintf("%s (accumulator %d)", r.Outcome, r.Accumulator)
	case OutcomeFault:
		if r.Fault == FaultInvalidJump {
			return fmt.Sprintf("fault: %s to %d", r.Fault, r.IP)
		}
		return fmt.Sprintf("fault: %s at %d", r.Fault, r.IP)
	}
	return "running"
}
