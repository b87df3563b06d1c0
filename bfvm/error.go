package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrPointerOutOfRange = errors.New("pointer out of range")
	ErrInputUnsupported  = errors.New("input instruction is not supported")
	ErrStepLimit         = errors.New("step limit exceeded")
)

type PointerError struct {
	Ptr  int
	Size int
}

func (p *PointerError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrPointerOutOfRange.Error(), p.Ptr, p.Size)
}

func (p *PointerError) Unwrap() error {
	return ErrPointerOutOfRange
}
