package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/internal/config"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// Config is the merged configuration file.
type Config = config.Config

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() ([]byte, error)
}

var cfgLoader = configLoader{defaultConfig: loadDefaultConfigYAML}

func loadMergedConfig(cfgPath string) (Config, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func loadDefaultConfigYAML() ([]byte, error) {
	if len(embeddedDefaultConfig) == 0 {
		return nil, fmt.Errorf("embedded default config is empty")
	}
	return append([]byte(nil), embeddedDefaultConfig...), nil
}

func (l configLoader) loadDefaultConfigRaw() ([]byte, error) {
	if l.defaultConfig != nil {
		return l.defaultConfig()
	}
	return loadDefaultConfigYAML()
}

func (l configLoader) loadMergedConfig(cfgPath string) (Config, error) {
	var cfg Config

	defaultData, err := l.loadDefaultConfigRaw()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if err := yaml.Unmarshal(defaultData, &cfg); err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	if cfg.App.Output == "" {
		return cfg, fmt.Errorf("default config is missing app.output")
	}

	if cfgPath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, err
	}
	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", cfgPath, err)
	}
	return cfg.Merge(user), nil
}
