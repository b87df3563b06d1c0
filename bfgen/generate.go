package bfgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/bfvm"
)

type Options struct {
	TapeSize int
}

// Generate writes source for program in the target language.
// Nothing is written to w if generation fails.
func Generate(program *bfir.Program, target Target, options Options, w io.Writer) error {
	if options.TapeSize <= 0 {
		options.TapeSize = bfvm.DefaultTapeSize
	}

	e := &emitter{
		target: target,
	}
	target.prologue(e, options)
	if err := e.block(program.Body); err != nil {
		return err
	}
	target.epilogue(e)

	src, err := target.finish(e.buf.Bytes())
	if err != nil {
		return fmt.Errorf("finish %s source: %w", target.Name(), err)
	}
	_, err = w.Write(src)
	return err
}

func GenerateString(program *bfir.Program, target Target, options Options) (string, error) {
	var sb strings.Builder
	if err := Generate(program, target, options, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type emitter struct {
	target Target
	buf    bytes.Buffer
	level  int
}

func (e *emitter) line(format string, args ...any) {
	e.buf.WriteString(strings.Repeat(e.target.indent(), e.level))
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *emitter) blank() {
	e.buf.WriteByte('\n')
}

func (e *emitter) block(nodes []bfir.Node) error {
	for _, node := range nodes {
		switch node := node.(type) {

		case bfir.PointerMove:
			e.target.move(e, node.Delta)

		case bfir.CellAdd:
			e.target.add(e, node.Delta)

		case bfir.MoveThenAdd:
			e.target.move(e, node.Move)
			e.target.add(e, node.Add)

		case bfir.SetCell:
			e.target.set(e, node.Value)

		case bfir.Output:
			e.target.output(e)

		case bfir.Input:
			return bfvm.ErrInputUnsupported

		case bfir.Loop:
			e.target.loopBegin(e)
			e.level++
			if err := e.block(node.Body); err != nil {
				return err
			}
			if len(node.Body) == 0 {
				e.target.emptyBody(e)
			}
			e.level--
			e.target.loopEnd(e)

		default:
			return fmt.Errorf("unknown node: %v", node)
		}
	}
	return nil
}

// wrap maps a delta to the byte it adds under 8-bit wrapping.
func wrap(delta int) byte {
	return byte(delta)
}
