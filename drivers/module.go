package drivers

import (
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/debugs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bftconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
