package bfir

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnclosedLoop    = errors.New("unclosed loop")
	ErrUnexpectedClose = errors.New("unexpected loop close")
	ErrNestingTooDeep  = errors.New("loop nesting too deep")
)

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
	}

	var sb strings.Builder
	if p.Source.Name != "" {
		fmt.Fprintf(&sb, "%s at %s:%s\n", p.Err.Error(), p.Source.Name, p.Pos)
	} else {
		fmt.Fprintf(&sb, "%s at %s\n", p.Err.Error(), p.Pos)
	}

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := p.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		for i, r := range []rune(line) {
			if i >= p.Pos.Column-1 {
				break
			}
			if r == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func withPos(err error, pos Pos, source *Source) error {
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}
