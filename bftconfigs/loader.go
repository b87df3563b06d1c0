package bftconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/logs"
)

//go:embed schema.cue
var schema string

// ConfigFileNames are searched in the working directory, the user config dir
// and /etc, in that order of precedence.
var ConfigFileNames = []string{
	"bft.cue",
	".bft.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	loader := configs.NewLoader(findConfigFiles(), schema)
	// compiles and validates every file
	paths, err := loader.Paths()
	if err != nil {
		logger.Error("invalid config",
			"error", err,
		)
	} else if len(paths) > 0 {
		logger.Info("config files",
			"paths", paths,
		)
	}
	return loader
}

func findConfigFiles() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range ConfigFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

// Schema returns the closed CUE schema config files are validated against.
func Schema() string {
	return schema
}
