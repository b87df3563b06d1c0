package sources

import (
	"github.com/reusee/bft/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}
