// Package config holds the bootstrap's fixed settings. Nothing here is read
// from the command line: every argument belongs to the embedded runtime.
package config

import (
	"runner/geometry"
	"runner/log"
)

const (
	DefaultTitle   = "httpd Settings"
	DefaultDataDir = "data"
)

type Config struct {
	Title   string
	DataDir string
	LogDir  string
	Ratios  geometry.Ratios
}

func Default() Config {
	return Config{
		Title:   DefaultTitle,
		DataDir: DefaultDataDir,
		Ratios:  geometry.DefaultRatios,
	}
}

// Load returns Default with the log directory resolved. A log directory that
// cannot be resolved is left empty and logging is skipped.
func Load() (Config, error) {
	cfg := Default()
	dir, err := log.ResolveDir()
	if err != nil {
		return cfg, err
	}
	cfg.LogDir = dir
	return cfg, nil
}
