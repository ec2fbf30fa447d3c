package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

func LoadMappingsConfig() (*MappingsConfig, error) {

	path := os.Getenv("MAPPINGS_CONFIG_PATH")
	if path == "" {
		path = "configs/mappings.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg MappingsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *MappingsConfig) {
	if cfg.Fallback.Category == "" {
		cfg.Fallback.Category = "general"
	}
	// Zero is the unset sentinel, see FallbackConfig.
	if cfg.Fallback.Confidence == 0 {
		cfg.Fallback.Confidence = 0.1
	}
}

func (c *MappingsConfig) Validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("mappings config has no rules")
	}
	for i, r := range c.Rules {
		if r.Category == "" {
			return fmt.Errorf("rule %d has no category", i)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("rule %q has no keywords", r.Category)
		}
		if r.Priority < 0 {
			return fmt.Errorf("rule %q has negative priority", r.Category)
		}
	}
	return nil
}
