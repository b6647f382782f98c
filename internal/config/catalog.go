package config

import (
	"os"
	"strconv"
)

const (
	EnvCatalogConfigFile = "CATALOG_CONFIG_FILE"
	EnvCatalogWatch      = "CATALOG_WATCH"
)

// CatalogConfig locates the backup agent configuration that defines the models.
// An empty ConfigFile searches the agent's default locations.
type CatalogConfig struct {
	ConfigFile string `toml:"config_file"`
	Watch      bool   `toml:"watch"`
}

// Finalize loads environment overrides. The catalog has no defaults to apply.
func (c *CatalogConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CatalogConfig) Merge(overlay *CatalogConfig) {
	if overlay.ConfigFile != "" {
		c.ConfigFile = overlay.ConfigFile
	}
	if overlay.Watch {
		c.Watch = true
	}
}

func (c *CatalogConfig) loadEnv() {
	if v := os.Getenv(EnvCatalogConfigFile); v != "" {
		c.ConfigFile = os.ExpandEnv(v)
	}
	if v := os.Getenv(EnvCatalogWatch); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Watch = b
		}
	}
}
