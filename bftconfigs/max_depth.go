package bftconfigs

import (
	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/vars"
)

type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (m MaxDepth) ConfigExpr() string {
	return "max_depth"
}

var maxDepthFlag = cmds.Var[int]("-max-depth")

func init() {
	cmds.Describe("-max-depth", "loop nesting limit")
}

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return vars.FirstNonZero(
		MaxDepth(*maxDepthFlag),
		configs.First[MaxDepth](loader, MaxDepth(0).ConfigExpr()),
		MaxDepth(bfir.DefaultMaxDepth),
	)
}
