package cmd

import (
	"io"
	"os"

	"github.com/vollan/takt/internal/config"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Exit    func(code int)
	Config  func() (config.Config, error)
	DataDir func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Exit:    os.Exit,
		Config:  loadConfig,
		DataDir: resolveDataDir,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

func loadConfig() (config.Config, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig(), err
	}
	return config.LoadOrDefault(path)
}

func resolveDataDir() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.ResolveDataDir()
}
