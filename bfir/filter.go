package bfir

// Filter returns the instruction symbols of src in order. Everything else is a comment.
func Filter(src string) []Token {
	tokens := make([]Token, 0, len(src))
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	for _, r := range src {
		if r < 0x80 && Op(r).Valid() {
			tokens = append(tokens, Token{
				Op:  Op(r),
				Pos: pos,
			})
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return tokens
}

func FilterString(src string) string {
	tokens := Filter(src)
	buf := make([]byte, len(tokens))
	for i, token := range tokens {
		buf[i] = byte(token.Op)
	}
	return string(buf)
}
