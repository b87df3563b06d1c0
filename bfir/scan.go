package bfir

// RunLength sums a run of add and sub symbols at the head of tokens.
// It returns the net count and how many tokens the run covers; a run that
// reaches the end of tokens covers len(tokens).
func RunLength(tokens []Token, add, sub Op) (net, consumed int) {
	for i, token := range tokens {
		switch token.Op {
		case add:
			net++
		case sub:
			net--
		default:
			return net, i
		}
	}
	return net, len(tokens)
}
