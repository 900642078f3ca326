// Package config loads devshellgo's own tool configuration, as opposed to
// the shell descriptors it resolves. Layering order: built-in defaults, then
// an optional YAML config file, then DEVSHELL_-prefixed environment
// variables. Explicit CLI flags override all of these in the cli package.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the tool's own settings. Keys are flat so that environment
// variable names map onto them without translation rules
// (DEVSHELL_SEARCH_PATH_VAR -> search_path_var).
type Config struct {
	Store         string `koanf:"store"`
	Packages      string `koanf:"packages"`
	Format        string `koanf:"format"`
	SearchPathVar string `koanf:"search_path_var"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
}

const envPrefix = "DEVSHELL_"

// Load builds the layered configuration. path may be empty, in which case
// only defaults and environment variables apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Defaults
	defaults := map[string]string{
		"format":          "export",
		"search_path_var": "DEVSHELL_SEARCH_PATH",
		"log_level":       "info",
		"log_format":      "text",
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, err
		}
	}

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. Load from ENV (DEVSHELL_LOG_LEVEL -> log_level)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
