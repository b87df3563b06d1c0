package procs

import (
	"errors"
	"fmt"
	"testing"
)

func TestProcs(t *testing.T) {
	var steps []string
	step := func(name string) Proc[*[]string] {
		return Func[*[]string](func(ctx *[]string) (Proc[*[]string], error) {
			*ctx = append(*ctx, name)
			return nil, nil
		})
	}
	chained := Func[*[]string](func(ctx *[]string) (Proc[*[]string], error) {
		*ctx = append(*ctx, "parse")
		return step("run"), nil
	})

	err := RunAll(&steps, Proc[*[]string](Procs[*[]string]{
		step("load"),
		chained,
		step("flush"),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", steps); str != "[load parse run flush]" {
		t.Fatalf("got %s", str)
	}
}

func TestProcsError(t *testing.T) {
	bad := errors.New("bad")
	var ran bool
	err := RunAll(0, Proc[int](Procs[int]{
		Func[int](func(int) (Proc[int], error) {
			return nil, bad
		}),
		Func[int](func(int) (Proc[int], error) {
			ran = true
			return nil, nil
		}),
	}))
	if !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
	if ran {
		t.Fatal()
	}
}
