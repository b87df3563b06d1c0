package bftconfigs

import (
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/bft/vars"
)

// MaxSteps bounds interpreter steps. Zero means unlimited.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (m MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps")

func init() {
	cmds.Describe("-max-steps", "interpreter step budget")
}

// programs under test must not hang the test binary
const developmentMaxSteps = 1 << 26

func (Module) MaxSteps(
	loader configs.Loader,
	mode modes.Mode,
) MaxSteps {
	var fallback MaxSteps
	if mode == modes.ModeDevelopment {
		fallback = developmentMaxSteps
	}
	return vars.FirstNonZero(
		MaxSteps(*maxStepsFlag),
		configs.First[MaxSteps](loader, MaxSteps(0).ConfigExpr()),
		fallback,
	)
}
