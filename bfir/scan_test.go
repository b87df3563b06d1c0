package bfir

import "testing"

func TestFilter(t *testing.T) {
	if got := FilterString("a+b-c>d<e.f,g[h]i"); got != "+-><.,[]" {
		t.Fatalf("got %q", got)
	}
	if got := FilterString("no instructions at all"); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := FilterString("世界+"); got != "+" {
		t.Fatalf("got %q", got)
	}

	tokens := Filter("x\n +")
	if len(tokens) != 1 {
		t.Fatalf("got %v", tokens)
	}
	if tokens[0].Pos != (Pos{Line: 2, Column: 2}) {
		t.Fatalf("got %v", tokens[0].Pos)
	}
}

func TestRunLength(t *testing.T) {
	tests := []struct {
		input    string
		add, sub Op
		net      int
		consumed int
	}{
		{"+++", OpInc, OpDec, 3, 3},
		{"--", OpInc, OpDec, -2, 2},
		{"++-.", OpInc, OpDec, 1, 3},
		{"+-]", OpInc, OpDec, 0, 2},
		{">><<<[", OpRight, OpLeft, -1, 5},
		{"-]", OpInc, OpDec, -1, 1},
		{">+", OpRight, OpLeft, 1, 1},
	}
	for _, test := range tests {
		net, consumed := RunLength(Filter(test.input), test.add, test.sub)
		if net != test.net || consumed != test.consumed {
			t.Fatalf("%q: got %d %d", test.input, net, consumed)
		}
	}
}

func TestFuseMoveAdd(t *testing.T) {
	nodes := FuseMoveAdd(nil, 3)
	if len(nodes) != 1 || nodes[0] != (CellAdd{Delta: 3}) {
		t.Fatalf("got %v", nodes)
	}

	nodes = FuseMoveAdd([]Node{Output{}, PointerMove{Delta: -2}}, 5)
	if len(nodes) != 2 || nodes[1] != (MoveThenAdd{Move: -2, Add: 5}) {
		t.Fatalf("got %v", nodes)
	}

	nodes = FuseMoveAdd([]Node{MoveThenAdd{Move: 1, Add: 1}}, 1)
	if len(nodes) != 2 || nodes[1] != (CellAdd{Delta: 1}) {
		t.Fatalf("got %v", nodes)
	}
}

func TestIsClearIdiom(t *testing.T) {
	if !IsClearIdiom(Filter("-]")) {
		t.Fatal()
	}
	if IsClearIdiom(Filter("+]")) {
		t.Fatal()
	}
	if IsClearIdiom(Filter("-")) {
		t.Fatal()
	}
	if IsClearIdiom(nil) {
		t.Fatal()
	}
}
