package bftconfigs

import (
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/vars"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (t TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", "number of tape cells")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return vars.FirstNonZero(
		TapeSize(*tapeSizeFlag),
		configs.First[TapeSize](loader, TapeSize(0).ConfigExpr()),
		TapeSize(bfvm.DefaultTapeSize),
	)
}
