package bfgen

import (
	"go/format"
)

// GoTarget emits a main package. Cells are bytes, so arithmetic wraps natively.
type GoTarget struct{}

var _ Target = GoTarget{}

func (GoTarget) Name() string {
	return "go"
}

func (GoTarget) indent() string {
	return "\t"
}

func (GoTarget) prologue(e *emitter, options Options) {
	e.line("// Code generated by bft. DO NOT EDIT.")
	e.blank()
	e.line("package main")
	e.blank()
	e.line("import (")
	e.line("\t\"bufio\"")
	e.line("\t\"fmt\"")
	e.line("\t\"os\"")
	e.line(")")
	e.blank()
	e.line("var memory = make([]byte, %d)", options.TapeSize)
	e.blank()
	e.line("var ptr int")
	e.blank()
	e.line("func main() {")
	e.level++
	e.line("out := bufio.NewWriter(os.Stdout)")
	e.line("defer out.Flush()")
}

func (GoTarget) epilogue(e *emitter) {
	e.level--
	e.line("}")
	e.blank()
	e.line("func checkPtr() {")
	e.line("\tif ptr < 0 || ptr >= len(memory) {")
	e.line("\t\tpanic(fmt.Sprintf(\"pointer out of range: %%d not in [0, %%d)\", ptr, len(memory)))")
	e.line("\t}")
	e.line("}")
}

func (GoTarget) move(e *emitter, delta int) {
	if delta < 0 {
		e.line("ptr -= %d", -delta)
	} else {
		e.line("ptr += %d", delta)
	}
	e.line("checkPtr()")
}

func (GoTarget) add(e *emitter, delta int) {
	if delta < 0 && delta > -256 {
		e.line("memory[ptr] -= %d", -delta)
		return
	}
	e.line("memory[ptr] += %d", wrap(delta))
}

func (GoTarget) set(e *emitter, value byte) {
	e.line("memory[ptr] = %d", value)
}

func (GoTarget) output(e *emitter) {
	e.line("out.WriteByte(memory[ptr])")
}

func (GoTarget) loopBegin(e *emitter) {
	e.line("for memory[ptr] != 0 {")
}

func (GoTarget) emptyBody(e *emitter) {
}

func (GoTarget) loopEnd(e *emitter) {
	e.line("}")
}

func (GoTarget) finish(src []byte) ([]byte, error) {
	return format.Source(src)
}
