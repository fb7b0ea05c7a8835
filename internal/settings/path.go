package settings

import (
	"errors"
	"fmt"
	"path/filepath"

	"stylus-area/internal/config"
)

// Environment variables consulted for the config home, in priority order.
var configHomeVars = []string{"XDG_CONFIG_HOME", "APPDATA"}

// ResolveConfigDir returns the application's config directory without
// touching the filesystem. The first non-empty variable from configHomeVars
// wins; otherwise <home>/.config is used.
func ResolveConfigDir(getenv func(string) string, home func() (string, error)) (string, error) {
	base := ""
	for _, name := range configHomeVars {
		if v := getenv(name); v != "" {
			base = v
			break
		}
	}

	if base == "" {
		dir, err := home()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if dir == "" {
			return "", errors.New("resolve home directory: empty path")
		}
		base = filepath.Join(dir, ".config")
	}

	return filepath.Join(base, config.ConfigDirName), nil
}
