package bfgen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Target is a host language the generator emits.
type Target interface {
	Name() string

	indent() string
	prologue(e *emitter, options Options)
	epilogue(e *emitter)
	move(e *emitter, delta int)
	add(e *emitter, delta int)
	set(e *emitter, value byte)
	output(e *emitter)
	loopBegin(e *emitter)
	emptyBody(e *emitter)
	loopEnd(e *emitter)
	finish(src []byte) ([]byte, error)
}

var ErrUnknownTarget = errors.New("unknown target")

var targets = map[string]Target{
	"go":       GoTarget{},
	"rust":     RustTarget{},
	"starlark": StarlarkTarget{},
}

func TargetByName(name string) (Target, error) {
	target, ok := targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, expecting one of %v", ErrUnknownTarget, name, TargetNames())
	}
	return target, nil
}

func TargetNames() []string {
	return slices.Sorted(maps.Keys(targets))
}
