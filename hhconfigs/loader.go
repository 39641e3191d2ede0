package hhconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/handheld/configs"
	"github.com/reusee/handheld/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"handheld.cue",
	".handheld.cue",
}

// SearchDirs lists the directories searched for config files, highest precedence first.
type SearchDirs []string

func (Module) SearchDirs() SearchDirs {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs SearchDirs,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
