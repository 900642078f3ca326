package app

import (
	"errors"

	"github.com/vk/devshellgo/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorPath string // .hcl file or directory of them
	ShellName      string // empty selects the workspace's only shell

	PackagesPath string // lockfile resolver
	StorePath    string // store directory resolver

	Format        string
	SearchPathVar string
	ListShells    bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}
	if !cfg.ListShells {
		if cfg.PackagesPath == "" && cfg.StorePath == "" {
			return nil, errors.New("either a packages lockfile or a store directory must be configured")
		}
		if cfg.PackagesPath != "" && cfg.StorePath != "" {
			return nil, errors.New("a packages lockfile and a store directory cannot both be configured")
		}
	}

	switch cfg.Format {
	case render.FormatExport, render.FormatDotenv, render.FormatJSON:
	default:
		return nil, errors.New("Format must be one of 'export', 'dotenv' or 'json'")
	}
	if cfg.SearchPathVar == "" {
		return nil, errors.New("SearchPathVar is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
