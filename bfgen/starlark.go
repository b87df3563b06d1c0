package bfgen

import (
	"bufio"
	"context"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// StarlarkTarget emits a script for RunStarlark. Cells are ints kept in [0, 256).
type StarlarkTarget struct{}

var _ Target = StarlarkTarget{}

func (StarlarkTarget) Name() string {
	return "starlark"
}

func (StarlarkTarget) indent() string {
	return "    "
}

func (StarlarkTarget) prologue(e *emitter, options Options) {
	e.line("def main():")
	e.level++
	e.line("memory = [0] * %d", options.TapeSize)
	e.line("ptr = 0")
}

func (StarlarkTarget) epilogue(e *emitter) {
	e.level--
	e.blank()
	e.line("main()")
}

func (StarlarkTarget) move(e *emitter, delta int) {
	if delta < 0 {
		e.line("ptr -= %d", -delta)
	} else {
		e.line("ptr += %d", delta)
	}
	// the pointer faults on leaving the tape, not on the next access; negative indexes are valid in starlark
	e.line(`if ptr < 0 or ptr >= len(memory): fail("pointer out of range: %%d not in [0, %%d)" %% (ptr, len(memory)))`)
}

func (StarlarkTarget) add(e *emitter, delta int) {
	e.line("memory[ptr] = (memory[ptr] + %d) %% 256", wrap(delta))
}

func (StarlarkTarget) set(e *emitter, value byte) {
	e.line("memory[ptr] = %d", value)
}

func (StarlarkTarget) output(e *emitter) {
	e.line("output(memory[ptr])")
}

func (StarlarkTarget) loopBegin(e *emitter) {
	e.line("while memory[ptr] != 0:")
}

func (StarlarkTarget) emptyBody(e *emitter) {
	e.line("pass")
}

func (StarlarkTarget) loopEnd(e *emitter) {
}

func (StarlarkTarget) finish(src []byte) ([]byte, error) {
	return src, nil
}

var fileOptions = &syntax.FileOptions{
	While: true,
}

// RunStarlark executes a script produced by StarlarkTarget, writing output bytes to out.
// maxSteps bounds the starlark execution steps; zero means unlimited.
func RunStarlark(ctx context.Context, name string, src string, out io.Writer, maxSteps uint64) (err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if e := w.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	thread := &starlark.Thread{
		Name: name,
	}
	if maxSteps > 0 {
		thread.SetMaxExecutionSteps(maxSteps)
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	predeclared := starlark.StringDict{
		"output": starlark.NewBuiltin("output", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var value int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
				return nil, err
			}
			if err := w.WriteByte(byte(value)); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),
	}

	_, err = starlark.ExecFileOptions(fileOptions, thread, name, src, predeclared)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
