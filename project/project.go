// Package project is the handle the embedded application runtime is started
// from: the bundled data directory plus the entrypoint arguments.
package project

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
)

var ErrArgumentsSet = errors.New("project: entrypoint arguments already set")

type Project struct {
	dataDir string
	args    []string
	argsSet bool
}

// New binds a project to dataDir. A relative dataDir is resolved against the
// executable's directory by AssetsPath, not the working directory.
func New(dataDir string) *Project {
	return &Project{dataDir: dataDir}
}

func (p *Project) DataDir() string { return p.dataDir }

func (p *Project) AssetsPath() string {
	if filepath.IsAbs(p.dataDir) {
		return p.dataDir
	}
	exe, err := os.Executable()
	if err != nil {
		return p.dataDir
	}
	return filepath.Join(filepath.Dir(exe), p.dataDir)
}

// SetEntrypointArguments hands args to the runtime. It may be called once;
// the project keeps its own copy.
func (p *Project) SetEntrypointArguments(args []string) error {
	if p.argsSet {
		return ErrArgumentsSet
	}
	p.args = slices.Clone(args)
	if p.args == nil {
		p.args = []string{}
	}
	p.argsSet = true
	return nil
}

func (p *Project) EntrypointArguments() []string {
	return slices.Clone(p.args)
}
