package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"pierogi/internal/config"
)

// LoadConfig reads environment configuration and then overlays the YAML
// policy file at path, or at POLICY_FILE when path is empty. Keys missing
// from the file keep their environment values.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	if path == "" {
		path = cfg.PolicyFile
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.PolicyFile = path

	return cfg, nil
}
