package bfir

import (
	"fmt"
)

// Node is an IR node. The set of implementations is closed.
type Node interface {
	irNode()
	String() string
}

type PointerMove struct {
	Delta int
}

type CellAdd struct {
	Delta int
}

// MoveThenAdd moves the pointer by Move, then adds Add to the cell it lands on.
type MoveThenAdd struct {
	Move int
	Add  int
}

type SetCell struct {
	Value byte
}

type Output struct{}

type Input struct{}

type Loop struct {
	Body []Node
}

type Program struct {
	Body []Node
}

var (
	_ Node = PointerMove{}
	_ Node = CellAdd{}
	_ Node = MoveThenAdd{}
	_ Node = SetCell{}
	_ Node = Output{}
	_ Node = Input{}
	_ Node = Loop{}
	_ Node = Program{}
)

func (PointerMove) irNode() {}
func (CellAdd) irNode()     {}
func (MoveThenAdd) irNode() {}
func (SetCell) irNode()     {}
func (Output) irNode()      {}
func (Input) irNode()       {}
func (Loop) irNode()        {}
func (Program) irNode()     {}

func (p PointerMove) String() string {
	return fmt.Sprintf("move(%d)", p.Delta)
}

func (c CellAdd) String() string {
	return fmt.Sprintf("add(%d)", c.Delta)
}

func (m MoveThenAdd) String() string {
	return fmt.Sprintf("move-add(%d, %d)", m.Move, m.Add)
}

func (s SetCell) String() string {
	return fmt.Sprintf("set(%d)", s.Value)
}

func (Output) String() string {
	return "output"
}

func (Input) String() string {
	return "input"
}

func (l Loop) String() string {
	return fmt.Sprintf("loop[%d]", len(l.Body))
}

func (p Program) String() string {
	return fmt.Sprintf("program[%d]", len(p.Body))
}
