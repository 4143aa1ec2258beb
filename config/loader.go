package config

import (
	"log/slog"
	"os"
)

// ProjectConfigFile is the config file picked up from the working
// directory when no explicit path is given.
const ProjectConfigFile = "skos2jskos.yaml"

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence: defaults, then the
// config file (the explicit path when set, otherwise skos2jskos.yaml in
// the working directory when present). Flag values are merged on top by
// the caller.
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		if _, err := os.Stat(ProjectConfigFile); err != nil {
			return config, nil
		}
		path = ProjectConfigFile
	}

	fileConfig, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("loaded config file", slog.String("path", path))
	config.Merge(fileConfig)
	return config, nil
}
