package bftconfigs

import (
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/vars"
)

// Target names the code generation target.
type Target string

var _ configs.Configurable = Target("")

func (t Target) ConfigExpr() string {
	return "target"
}

var targetFlag = cmds.Var[string]("-target")

func init() {
	cmds.Describe("-target", "code generation target: go, rust or starlark")
}

func (Module) Target(
	loader configs.Loader,
) Target {
	return vars.FirstNonZero(
		Target(*targetFlag),
		configs.First[Target](loader, Target("").ConfigExpr()),
		"go",
	)
}
