package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override config values.
const EnvPrefix = "PAPERPAGE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PAPERPAGE_*). Nested keys use a double
// underscore: PAPERPAGE_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps PAPERPAGE_SERVER__LIVE_RELOAD to server.live_reload.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.CopyResetMS <= 0 {
		return fmt.Errorf("copy_reset_ms must be positive")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}

	if err := validateAssetBase(c.AssetBase); err != nil {
		return err
	}

	for _, pattern := range c.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid asset pattern %q", pattern)
		}
	}

	return nil
}

// validateAssetBase accepts an empty base or a relative path inside the
// output directory.
func validateAssetBase(base string) error {
	if base == "" {
		return nil
	}
	clean := path.Clean(base)
	if strings.Contains(base, "://") || strings.HasPrefix(base, "/") || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("invalid asset_base %q: must be a relative path inside the output directory", base)
	}
	return nil
}
