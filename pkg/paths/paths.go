package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for catalogpromo
	EnvConfigDir = "CATALOGPROMO_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for catalogpromo
	EnvStateDir = "CATALOGPROMO_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG roots
	AppDirName = "catalogpromo"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LocalConfigFileName is looked up in the working directory
	LocalConfigFileName = "catalogpromo.toml"

	// LogFileName is the name of the log file
	LogFileName = "catalogpromo.log"
)

// ConfigDir returns the directory holding the user configuration file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Reload re-reads the XDG environment variables. Tests that change
// XDG_* variables call it so the new values are picked up.
func Reload() {
	xdg.Reload()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
