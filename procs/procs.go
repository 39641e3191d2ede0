package procs

// Procs runs its elements in order; each element runs to completion before the next starts.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	rest := p[1:]
	if next != nil {
		rest = append(Procs[C]{next}, rest...)
	}
	if len(rest) == 0 {
		return nil, nil
	}
	return rest, nil
}
