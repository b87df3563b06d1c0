package bfir

const DefaultMaxDepth = 4096

type parser struct {
	maxDepth int
	source   *Source
}

type ParseOption func(*parser)

// WithMaxDepth bounds loop nesting. Values below 1 mean DefaultMaxDepth.
func WithMaxDepth(n int) ParseOption {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithSource attaches the raw text to positional errors.
func WithSource(source *Source) ParseOption {
	return func(p *parser) {
		p.source = source
	}
}

func Parse(src string, options ...ParseOption) (*Program, error) {
	options = append([]ParseOption{WithSource(NewSource("", src))}, options...)
	return ParseTokens(Filter(src), options...)
}

func ParseTokens(tokens []Token, options ...ParseOption) (*Program, error) {
	p := &parser{
		maxDepth: DefaultMaxDepth,
	}
	for _, option := range options {
		option(p)
	}

	body, consumed, closed, err := p.parseBlock(tokens, 0)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, withPos(ErrUnexpectedClose, tokens[consumed-1].Pos, p.source)
	}

	return &Program{
		Body: body,
	}, nil
}

// parseBlock parses tokens up to and including the first unmatched loop close.
// closed reports whether that close was found; consumed counts it.
func (p *parser) parseBlock(tokens []Token, depth int) (nodes []Node, consumed int, closed bool, err error) {
	i := 0
	for i < len(tokens) {
		token := tokens[i]
		switch token.Op {

		case OpRight, OpLeft:
			net, n := RunLength(tokens[i:], OpRight, OpLeft)
			nodes = append(nodes, PointerMove{
				Delta: net,
			})
			i += n

		case OpInc, OpDec:
			net, n := RunLength(tokens[i:], OpInc, OpDec)
			nodes = FuseMoveAdd(nodes, net)
			i += n

		case OpOutput:
			nodes = append(nodes, Output{})
			i++

		case OpInput:
			nodes = append(nodes, Input{})
			i++

		case OpLoopOpen:
			if IsClearIdiom(tokens[i+1:]) {
				nodes = append(nodes, SetCell{
					Value: 0,
				})
				i += 3
				continue
			}
			if depth+1 > p.maxDepth {
				return nil, 0, false, withPos(ErrNestingTooDeep, token.Pos, p.source)
			}
			body, n, ok, err := p.parseBlock(tokens[i+1:], depth+1)
			if err != nil {
				return nil, 0, false, err
			}
			if !ok {
				return nil, 0, false, withPos(ErrUnclosedLoop, token.Pos, p.source)
			}
			nodes = append(nodes, Loop{
				Body: body,
			})
			i += 1 + n

		case OpLoopClose:
			return nodes, i + 1, true, nil

		default:
			// unfiltered input
			i++

		}
	}
	return nodes, i, false, nil
}
