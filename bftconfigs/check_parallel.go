package bftconfigs

import (
	"runtime"

	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/vars"
)

// CheckParallel bounds programs verified concurrently by check.
type CheckParallel int

var _ configs.Configurable = CheckParallel(0)

func (c CheckParallel) ConfigExpr() string {
	return "check_parallel"
}

func (Module) CheckParallel(
	loader configs.Loader,
) CheckParallel {
	return vars.FirstNonZero(
		configs.First[CheckParallel](loader, CheckParallel(0).ConfigExpr()),
		CheckParallel(runtime.NumCPU()),
	)
}
