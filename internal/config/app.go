package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvAppBasePath = "APP_BASE_PATH"
	EnvAppFooter   = "APP_FOOTER"
	EnvAppUsername = "APP_USERNAME"
	EnvAppPassword = "APP_PASSWORD"
)

// AppConfig configures the web console module.
// Username and Password enable HTTP basic auth for the console and the API
// when Username is set.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	Footer   bool   `toml:"footer"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Footer {
		c.Footer = true
	}
	if overlay.Username != "" {
		c.Username = overlay.Username
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppFooter); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Footer = b
		}
	}
	if v := os.Getenv(EnvAppUsername); v != "" {
		c.Username = v
	}
	if v := os.Getenv(EnvAppPassword); v != "" {
		c.Password = v
	}
}

func (c *AppConfig) validate() error {
	if err := validatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}
	if c.Username != "" && c.Password == "" {
		return fmt.Errorf("password required when username is set")
	}
	return nil
}
