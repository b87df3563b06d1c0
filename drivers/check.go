package drivers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reusee/bft/bfgen"
	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/procs"
	"github.com/reusee/bft/sources"
	"github.com/reusee/bft/syncs"
)

var (
	ErrMismatch  = errors.New("interpreter and generated program disagree")
	ErrNoSources = errors.New("no sources to check")
)

// starlark executes several steps per tree node
const starlarkStepsPerNode = 64

// Check runs each program through the interpreter and through generated starlark,
// and fails when their outputs differ. Without locations it checks the configured sources.
type Check func(ctx context.Context, locations []string) error

func (Module) Check(
	load sources.Load,
	parse Parse,
	tapeSize bftconfigs.TapeSize,
	maxSteps bftconfigs.MaxSteps,
	parallel bftconfigs.CheckParallel,
	configured bftconfigs.CheckSources,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Check {

	check := stepFunc(func(j *job) (step, error) {
		name := j.source.Name

		if bfir.Collect(j.program).Inputs > 0 {
			logger.WarnContext(j.ctx, "check skipped: program reads input",
				"source", name,
			)
			return nil, nil
		}

		m := bfvm.NewMachine(int(tapeSize))
		m.MaxSteps = int(maxSteps)
		var want bytes.Buffer
		vmErr := m.Exec(j.ctx, j.program, &want)
		if errors.Is(vmErr, bfvm.ErrStepLimit) {
			logger.WarnContext(j.ctx, "check skipped: step limit",
				"source", name,
				"steps", m.Steps,
			)
			return nil, nil
		}
		if err := j.ctx.Err(); err != nil {
			return nil, err
		}

		script, err := bfgen.GenerateString(j.program, bfgen.StarlarkTarget{}, bfgen.Options{
			TapeSize: int(tapeSize),
		})
		if err != nil {
			return nil, err
		}
		var starlarkSteps uint64
		if maxSteps > 0 {
			starlarkSteps = uint64(maxSteps) * starlarkStepsPerNode
		}
		var got bytes.Buffer
		genErr := bfgen.RunStarlark(j.ctx, name, script, &got, starlarkSteps)
		if err := j.ctx.Err(); err != nil {
			return nil, err
		}

		switch {
		case (vmErr == nil) != (genErr == nil):
			return nil, fmt.Errorf("%w: %s: interpreter error %v, generated error %v",
				ErrMismatch, name, vmErr, genErr)
		case !bytes.Equal(want.Bytes(), got.Bytes()):
			return nil, fmt.Errorf("%w: %s: output differs at byte %d",
				ErrMismatch, name, mismatchOffset(want.Bytes(), got.Bytes()))
		}

		logger.InfoContext(j.ctx, "checked",
			"source", name,
			"output", want.Len(),
			"faulted", vmErr != nil,
		)
		return nil, nil
	})

	return func(ctx context.Context, locations []string) (err error) {
		ctx, span := newSpan(ctx, "", "check")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if len(locations) == 0 {
			locations = configured
		}
		if len(locations) == 0 {
			return ErrNoSources
		}

		sem := syncs.NewSemaphore(max(int(parallel), 1))
		errs := make([]error, len(locations))
		var wg sync.WaitGroup
		for i, location := range locations {
			if err := sem.AcquireContext(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				ctx, _ := newSpan(ctx, span, "check "+location)
				errs[i] = procs.RunAll(&job{
					ctx:      ctx,
					location: location,
				}, pipeline(load, parse, check))
			}()
		}
		wg.Wait()

		return errors.Join(errs...)
	}
}

func mismatchOffset(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
