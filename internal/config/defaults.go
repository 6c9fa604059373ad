package config

import "time"

// DefaultAssets are the glob patterns copied from the assets directory into
// the built site.
var DefaultAssets = []string{
	"**/*.mp4",
	"**/*.webm",
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.gif",
	"**/*.webp",
	"**/*.svg",
	"**/*.pdf",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "site",
		AssetsDir:   "public",
		Assets:      append([]string(nil), DefaultAssets...),
		CopyResetMS: 2000,
		Server: ServerConfig{
			Port:       8080,
			AllowAll:   false,
			LiveReload: true,
		},
	}
}

// CopyReset returns the copy confirmation window as a duration.
func (c *Config) CopyReset() time.Duration {
	return time.Duration(c.CopyResetMS) * time.Millisecond
}
