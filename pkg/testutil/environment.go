package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/catalogpromo/pkg/paths"
)

// Environment is an isolated set of catalogpromo directories
type Environment struct {
	// ConfigDir holds the user config.toml
	ConfigDir string
	// StateDir holds the log file
	StateDir string
	// WorkDir is a scratch directory for local config files and snapshots
	WorkDir string

	t *testing.T
}

// Isolate redirects the catalogpromo config and state directories to
// temporary directories for the duration of the test
func Isolate(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
		WorkDir:   t.TempDir(),
		t:         t,
	}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}

// WriteUserConfig writes the user configuration file
func (e *Environment) WriteUserConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.ConfigDir, paths.ConfigFileName, content)
}

// WriteFile writes name under WorkDir
func (e *Environment) WriteFile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.WorkDir, name, content)
}

// LogFile returns the log file path inside StateDir
func (e *Environment) LogFile() string {
	return filepath.Join(e.StateDir, paths.LogFileName)
}
