package bfir

type Stats struct {
	Nodes    int
	Moves    int
	Adds     int
	MoveAdds int
	Sets     int
	Outputs  int
	Inputs   int
	Loops    int
	MaxDepth int
}

func Collect(program *Program) (stats Stats) {
	collect(&stats, program.Body, 0)
	return
}

func collect(stats *Stats, nodes []Node, depth int) {
	stats.MaxDepth = max(stats.MaxDepth, depth)
	for _, node := range nodes {
		stats.Nodes++
		switch node := node.(type) {
		case PointerMove:
			stats.Moves++
		case CellAdd:
			stats.Adds++
		case MoveThenAdd:
			stats.MoveAdds++
		case SetCell:
			stats.Sets++
		case Output:
			stats.Outputs++
		case Input:
			stats.Inputs++
		case Loop:
			stats.Loops++
			collect(stats, node.Body, depth+1)
		}
	}
}

// LogArgs returns stats as slog key-value pairs.
func (s Stats) LogArgs() []any {
	return []any{
		"nodes", s.Nodes,
		"moves", s.Moves,
		"adds", s.Adds,
		"move_adds", s.MoveAdds,
		"sets", s.Sets,
		"outputs", s.Outputs,
		"inputs", s.Inputs,
		"loops", s.Loops,
		"max_depth", s.MaxDepth,
	}
}
