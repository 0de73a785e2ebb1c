package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xdg"

	"fix-layout/pkg/core"
)

// EnvConfig overrides the default config file location.
const EnvConfig = "FIX_LAYOUT_CONFIG"

// DefaultPath finds config.toml in $XDG_CONFIG_HOME/fix-layout or the XDG
// config dirs, or the file named by $FIX_LAYOUT_CONFIG.
func DefaultPath() (string, error) {
	paths := xdg.Paths{
		Override:  os.Getenv(EnvConfig),
		XDGSuffix: "fix-layout",
	}
	return paths.ConfigFile("config.toml")
}

// FindConfig resolves the configuration in this order:
// 1. the provided config file path
// 2. the single-rule flags
// 3. the default config file
// A config file and single-rule flags cannot be combined.
func FindConfig(providedPath string, flags Flags, log core.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath, "flags", flags.IsSet())

	if providedPath != "" && flags.IsSet() {
		return nil, fmt.Errorf("a config file cannot be combined with rule flags")
	}

	if providedPath != "" {
		return LoadFromFile(providedPath, log)
	}

	if flags.IsSet() {
		return FromFlags(flags, log)
	}

	path, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("no rule flags given and no config file found: %w", err)
	}
	log.Info("Using default config file", "path", path)
	return LoadFromFile(path, log)
}
