package procs

import (
	"errors"
	"slices"
	"testing"
)

func TestDrive(t *testing.T) {
	var got []string
	record := func(name string, next Proc[int]) Proc[int] {
		return Func[int](func(n int) (Proc[int], error) {
			got = append(got, name)
			return next, nil
		})
	}

	err := Drive[int](1, Procs[int]{
		record("a", record("a2", nil)),
		record("b", nil),
		Procs[int]{},
		record("c", nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"a", "a2", "b", "c"}) {
		t.Fatalf("got %v", got)
	}
}

func TestDrive_Error(t *testing.T) {
	errFoo := errors.New("foo")
	ran := false
	err := Drive[int](0, Procs[int]{
		Func[int](func(int) (Proc[int], error) {
			return nil, errFoo
		}),
		Func[int](func(int) (Proc[int], error) {
			ran = true
			return nil, nil
		}),
	})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if ran {
		t.Fatal("should stop")
	}
}

func TestDrive_Nil(t *testing.T) {
	if err := Drive[int](0, nil); err != nil {
		t.Fatal(err)
	}
}
