package bfir

import "fmt"

// Op is one instruction symbol.
type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpInc       Op = '+'
	OpDec       Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopOpen  Op = '['
	OpLoopClose Op = ']'
)

func (o Op) Valid() bool {
	switch o {
	case OpRight, OpLeft, OpInc, OpDec, OpOutput, OpInput, OpLoopOpen, OpLoopClose:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}

// Pos is a 1-based position in the raw program text.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Op  Op
	Pos Pos
}
