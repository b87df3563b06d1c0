package bfir

// FuseMoveAdd appends a cell add of delta to nodes. When the last node is a
// pointer move, it is replaced by a single MoveThenAdd instead.
func FuseMoveAdd(nodes []Node, delta int) []Node {
	if n := len(nodes); n > 0 {
		if move, ok := nodes[n-1].(PointerMove); ok {
			nodes[n-1] = MoveThenAdd{
				Move: move.Delta,
				Add:  delta,
			}
			return nodes
		}
	}
	return append(nodes, CellAdd{
		Delta: delta,
	})
}

// IsClearIdiom reports whether tokens, positioned just after a loop open,
// start with a decrement and the loop close.
func IsClearIdiom(tokens []Token) bool {
	return len(tokens) >= 2 &&
		tokens[0].Op == OpDec &&
		tokens[1].Op == OpLoopClose
}
