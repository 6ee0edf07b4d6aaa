package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".xpshim"

// ResolvePath returns the config file location. XPSHIM_CONFIG wins, then
// $XPSHIM_HOME/config.yaml, then ~/.xpshim/config.yaml.
func ResolvePath() (string, error) {
	if p := os.Getenv("XPSHIM_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XPSHIM_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, defaultBaseDir)
	}
	return filepath.Join(base, "config.yaml"), nil
}
