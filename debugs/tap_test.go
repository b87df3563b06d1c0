package debugs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the REPL ends at EOF
		tap(t.Context(), "test", map[string]any{
			"tape": []byte{1, 2, 3},
			"ptr":  1,
			"cell": func(i int) int {
				return i
			},
		})
	})
}
