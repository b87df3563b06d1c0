package bfvm

import (
	"bufio"
	"context"
	"io"

	"github.com/reusee/bft/bfir"
)

const DefaultTapeSize = 30000

// Machine is the execution state of one program run.
type Machine struct {
	Tape []byte
	Ptr  int

	// MaxSteps bounds executed nodes plus loop checks. Zero means unlimited.
	MaxSteps int
	Steps    int

	ctx context.Context
	out *bufio.Writer
}

func NewMachine(tapeSize int) *Machine {
	if tapeSize <= 0 {
		tapeSize = DefaultTapeSize
	}
	return &Machine{
		Tape: make([]byte, tapeSize),
	}
}

// Cell returns the current cell.
func (m *Machine) Cell() byte {
	return m.Tape[m.Ptr]
}

// Exec runs program against the machine, writing output bytes to out.
// Output produced before a fault is flushed.
func (m *Machine) Exec(ctx context.Context, program *bfir.Program, out io.Writer) (err error) {
	m.ctx = ctx
	m.out = bufio.NewWriter(out)
	defer func() {
		if e := m.out.Flush(); e != nil && err == nil {
			err = e
		}
		m.ctx = nil
		m.out = nil
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.exec(program.Body)
}

const pollInterval = 1 << 16

func (m *Machine) step() error {
	m.Steps++
	if m.MaxSteps > 0 && m.Steps > m.MaxSteps {
		return ErrStepLimit
	}
	if m.Steps%pollInterval == 0 {
		if err := m.ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) move(delta int) error {
	ptr := m.Ptr + delta
	if ptr < 0 || ptr >= len(m.Tape) {
		return &PointerError{
			Ptr:  ptr,
			Size: len(m.Tape),
		}
	}
	m.Ptr = ptr
	return nil
}

func (m *Machine) exec(nodes []bfir.Node) error {
	for _, node := range nodes {
		if err := m.step(); err != nil {
			return err
		}

		switch node := node.(type) {

		case bfir.PointerMove:
			if err := m.move(node.Delta); err != nil {
				return err
			}

		case bfir.CellAdd:
			m.Tape[m.Ptr] += byte(node.Delta)

		case bfir.MoveThenAdd:
			if err := m.move(node.Move); err != nil {
				return err
			}
			m.Tape[m.Ptr] += byte(node.Add)

		case bfir.SetCell:
			m.Tape[m.Ptr] = node.Value

		case bfir.Output:
			if err := m.out.WriteByte(m.Tape[m.Ptr]); err != nil {
				return err
			}

		case bfir.Input:
			return ErrInputUnsupported

		case bfir.Loop:
			for m.Tape[m.Ptr] != 0 {
				if err := m.exec(node.Body); err != nil {
					return err
				}
				if err := m.step(); err != nil {
					return err
				}
			}

		}
	}
	return nil
}

// Run parses src and executes it on a fresh machine.
func Run(ctx context.Context, src string, tapeSize int, out io.Writer) (*Machine, error) {
	program, err := bfir.Parse(src)
	if err != nil {
		return nil, err
	}
	m := NewMachine(tapeSize)
	if err := m.Exec(ctx, program, out); err != nil {
		return m, err
	}
	return m, nil
}
