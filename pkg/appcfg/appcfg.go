package appcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language             string `yaml:"language"`  // "en" | "ru"
	LogLevel             string `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	LogFile              string `yaml:"log_file"`  // optional file log, may contain {start} and {pid}
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console"`
	Cores                int    `yaml:"cores"` // default worker count when --cpu is not given
}

// Default are the settings used when no config file is present.
func Default() *Config {
	return &Config{Language: "en", LogLevel: "info", HideSecretsInConsole: true}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}

	// defaults
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return &c, nil
}
