package drivers

import (
	"context"
	"io"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/debugs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/procs"
	"github.com/reusee/bft/sources"
)

var tapFlag = cmds.Switch("-tap")

func init() {
	cmds.Describe("-tap", "open a starlark REPL on the machine state after run")
}

// TapEnabled opens the debug tap after each run.
type TapEnabled bool

func (Module) TapEnabled() TapEnabled {
	return TapEnabled(*tapFlag)
}

// Run interprets the program at location, writing its output to out.
type Run func(ctx context.Context, location string, out io.Writer) error

func (Module) Run(
	load sources.Load,
	parse Parse,
	tapeSize bftconfigs.TapeSize,
	maxSteps bftconfigs.MaxSteps,
	tapEnabled TapEnabled,
	tap debugs.Tap,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, location string, out io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "", "run")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		exec := stepFunc(func(j *job) (step, error) {
			m := bfvm.NewMachine(int(tapeSize))
			m.MaxSteps = int(maxSteps)
			err := m.Exec(j.ctx, j.program, j.out)
			logger.InfoContext(j.ctx, "executed",
				"source", j.source.Name,
				"steps", m.Steps,
				"ptr", m.Ptr,
			)
			if tapEnabled {
				tap(j.ctx, j.source.Name, machineGlobals(m, j.program, err))
			}
			return nil, err
		})

		return procs.RunAll(&job{
			ctx:      ctx,
			location: location,
			out:      out,
		}, pipeline(load, parse, exec))
	}
}

func machineGlobals(m *bfvm.Machine, program *bfir.Program, err error) map[string]any {
	// the tape up to the last nonzero cell
	used := 0
	for i, b := range m.Tape {
		if b != 0 {
			used = i + 1
		}
	}
	globals := map[string]any{
		"tape":    m.Tape[:max(used, m.Ptr+1)],
		"ptr":     m.Ptr,
		"steps":   m.Steps,
		"program": bfir.Sprint(program),
		"cell": func(i int) int {
			if i < 0 || i >= len(m.Tape) {
				return -1
			}
			return int(m.Tape[i])
		},
	}
	if err != nil {
		globals["error"] = err.Error()
	}
	return globals
}
