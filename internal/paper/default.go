package paper

import (
	_ "embed"
	"fmt"
)

//go:embed flare.yml
var defaultYAML []byte

// Default returns the built-in record used when no content file is
// configured.
func Default() (*Paper, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in paper: %w", err)
	}
	return p, nil
}

// LoadOrDefault loads path, or the built-in record when path is empty.
func LoadOrDefault(path string) (*Paper, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
