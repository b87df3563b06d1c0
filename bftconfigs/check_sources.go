package bftconfigs

import (
	"github.com/reusee/bft/configs"
)

// CheckSources are the program locations check verifies when none are given.
// Lists from every config file are concatenated.
type CheckSources []string

func (Module) CheckSources(
	loader configs.Loader,
) (ret CheckSources) {
	for sources := range configs.All[[]string](loader, "check_sources") {
		ret = append(ret, sources...)
	}
	return
}
