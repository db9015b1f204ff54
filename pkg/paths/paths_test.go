package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/promo-config")
		assert.Equal(t, "/tmp/promo-config", ConfigDir())
		assert.Equal(t, filepath.Join("/tmp/promo-config", ConfigFileName), ConfigFile())
	})

	t.Run("xdg config home", func(t *testing.T) {
		// registered first so it runs after the env is restored
		t.Cleanup(Reload)
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		Reload()
		assert.Equal(t, filepath.Join("/tmp/xdg-config", AppDirName), ConfigDir())
	})
}

func TestStateDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/tmp/promo-state")
		assert.Equal(t, filepath.Join("/tmp/promo-state", LogFileName), LogFile())
	})

	t.Run("xdg state home", func(t *testing.T) {
		t.Cleanup(Reload)
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
		Reload()
		assert.Equal(t, filepath.Join("/tmp/xdg-state", AppDirName), StateDir())
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/promo", filepath.Join(home, "promo")},
		{"absolute", "/etc/promo", "/etc/promo"},
		{"relative", "promo", "promo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandHome(tt.input))
		})
	}
}
