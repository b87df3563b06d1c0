package bfir

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the tree under node, one node per line, loop bodies indented.
func Fprint(w io.Writer, node Node) error {
	return fprint(w, node, 0)
}

func fprint(w io.Writer, node Node, level int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), node); err != nil {
		return err
	}
	var body []Node
	switch node := node.(type) {
	case Program:
		body = node.Body
	case *Program:
		body = node.Body
	case Loop:
		body = node.Body
	}
	for _, child := range body {
		if err := fprint(w, child, level+1); err != nil {
			return err
		}
	}
	return nil
}

func Sprint(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}
