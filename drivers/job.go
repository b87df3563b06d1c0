package drivers

import (
	"context"
	"io"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/procs"
	"github.com/reusee/bft/sources"
)

// job is the state a pipeline of procs works on.
type job struct {
	ctx      context.Context
	location string
	out      io.Writer

	source  *bfir.Source
	program *bfir.Program
}

type step = procs.Proc[*job]

type stepFunc = procs.Func[*job]

// pipeline loads and parses, then runs consume on the program.
func pipeline(load sources.Load, parse Parse, consume step) step {
	return procs.Procs[*job]{
		loadStep(load),
		parseStep(parse),
		consume,
	}
}

func loadStep(load sources.Load) step {
	return stepFunc(func(j *job) (step, error) {
		source, err := load(j.ctx, j.location)
		if err != nil {
			return nil, err
		}
		j.source = source
		return nil, nil
	})
}

func parseStep(parse Parse) step {
	return stepFunc(func(j *job) (step, error) {
		program, err := parse(j.ctx, j.source)
		if err != nil {
			return nil, err
		}
		j.program = program
		return nil, nil
	})
}
