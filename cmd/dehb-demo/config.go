package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hadarshavit/dehb-go/dehb"
	"github.com/hadarshavit/dehb-go/logging"
)

// demoConfig is the YAML-loadable shape the CLI reads when --config is
// passed; fields the file does not set keep their defaultDemoConfig values.
type demoConfig struct {
	Options     dehb.Options   `yaml:"options"`
	Generations int            `yaml:"generations"`
	Logging     logging.Config `yaml:"logging"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		Options:     dehb.DefaultOptions(),
		Generations: 9,
		Logging:     logging.Config{Level: "info"},
	}
}

func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return demoConfig{}, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return demoConfig{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
