package debugs

import (
	"testing"

	"github.com/reusee/bft/bfir"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	dict := func(pairs ...starlark.Value) starlark.Value {
		d := starlark.NewDict(len(pairs) / 2)
		for i := 0; i < len(pairs); i += 2 {
			d.SetKey(pairs[i], pairs[i+1])
		}
		return d
	}
	list := func(elems ...starlark.Value) starlark.Value {
		return starlark.NewList(elems)
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"tape", []byte{0, 64, 255}, starlark.Bytes("\x00@\xff")},
		{"string", "+[-]", starlark.String("+[-]")},
		{"int", 42, starlark.MakeInt(42)},
		{"negative", int8(-3), starlark.MakeInt(-3)},
		{"byte", byte(255), starlark.MakeInt(255)},
		{"uint64", uint64(1) << 40, starlark.MakeUint64(1 << 40)},
		{"float", 0.5, starlark.Float(0.5)},
		{"ints", []int{1, 2}, list(starlark.MakeInt(1), starlark.MakeInt(2))},
		{"map", map[string]int{"ptr": 3}, dict(starlark.String("ptr"), starlark.MakeInt(3))},
		{"node", bfir.MoveThenAdd{Move: 1, Add: -1}, dict(
			starlark.String("Move"), starlark.MakeInt(1),
			starlark.String("Add"), starlark.MakeInt(-1),
		)},
		{"loop", &bfir.Loop{Body: []bfir.Node{bfir.Output{}}}, dict(
			starlark.String("Body"), list(dict()),
		)},
		{"nil pointer", (*bfir.Program)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		value := toStarlarkValue(func(i int) int {
			return i + 1
		})
		if _, ok := value.(starlark.Callable); !ok {
			t.Fatalf("got %T", value)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
