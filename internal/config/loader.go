package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the game configuration. With an empty path the embedded
// defaults are used; otherwise the file at path is layered over the
// defaults, so a partial file only overrides the keys it names. The
// result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
