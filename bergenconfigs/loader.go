package bergenconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bergen/configs"
	"github.com/reusee/bergen/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bergen.cue",
	".bergen.cue",
}

// ConfigDirs lists the directories searched for config files, most specific first.
func ConfigDirs() (dirs []string) {
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return
}

func findConfigs(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := findConfigs(ConfigDirs())
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
