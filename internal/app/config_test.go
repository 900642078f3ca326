package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		DescriptorPath: "shells/",
		PackagesPath:   "devshell.lock",
		Format:         "export",
		SearchPathVar:  "DEVSHELL_SEARCH_PATH",
		LogFormat:      "text",
		LogLevel:       "info",
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(validConfig())

	require.NoError(t, err)
	assert.Equal(t, "shells/", cfg.DescriptorPath)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{
			name:    "missing descriptor path",
			mutate:  func(c *Config) { c.DescriptorPath = "" },
			message: "DescriptorPath",
		},
		{
			name:    "no resolver source",
			mutate:  func(c *Config) { c.PackagesPath = "" },
			message: "either a packages lockfile or a store directory",
		},
		{
			name:    "both resolver sources",
			mutate:  func(c *Config) { c.StorePath = "/nix/store" },
			message: "cannot both be configured",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Format = "xml" },
			message: "Format must be one of",
		},
		{
			name:    "missing search path var",
			mutate:  func(c *Config) { c.SearchPathVar = "" },
			message: "SearchPathVar",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tc.mutate(&cfg)

			_, err := NewConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestNewConfig_ListNeedsNoResolver(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.PackagesPath = ""
	cfg.ListShells = true

	_, err := NewConfig(cfg)

	require.NoError(t, err)
}
