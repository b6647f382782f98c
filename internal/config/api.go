package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/backup-service/pkg/middleware"
	"github.com/JaimeStill/backup-service/pkg/openapi"
	"github.com/JaimeStill/backup-service/pkg/pagination"
	"github.com/docker/go-units"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
	Servers:     "API_OPENAPI_SERVERS",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled: "API_RATE_LIMIT_ENABLED",
	RPS:     "API_RATE_LIMIT_RPS",
	Burst:   "API_RATE_LIMIT_BURST",
}

const (
	EnvAPIBasePath     = "API_BASE_PATH"
	EnvAPIStreamBuffer = "API_STREAM_BUFFER"
)

// APIConfig configures the JSON API module.
type APIConfig struct {
	BasePath   string                     `toml:"base_path"`
	CORS       middleware.CORSConfig      `toml:"cors"`
	Pagination pagination.Config          `toml:"pagination"`
	RateLimit  middleware.RateLimitConfig `toml:"rate_limit"`
	OpenAPI    openapi.Config             `toml:"openapi"`

	// StreamBuffer is the copy buffer size for streamed downloads, e.g. "64KB".
	StreamBuffer    string `toml:"stream_buffer"`
	streamBufferVal int64
}

// StreamBufferBytes returns the parsed stream buffer size.
func (c *APIConfig) StreamBufferBytes() int64 {
	return c.streamBufferVal
}

// Finalize applies defaults, loads environment overrides, and validates the API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.StreamBuffer != "" {
		c.StreamBuffer = overlay.StreamBuffer
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.StreamBuffer == "" {
		c.StreamBuffer = "32KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIStreamBuffer); v != "" {
		c.StreamBuffer = v
	}
}

func (c *APIConfig) validate() error {
	if err := validatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}

	size, err := units.RAMInBytes(c.StreamBuffer)
	if err != nil {
		return fmt.Errorf("invalid stream_buffer: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("stream_buffer must be positive")
	}
	c.streamBufferVal = size

	return nil
}

// validatePrefix checks a module base path: "/" or a single "/segment".
func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("%q must be a single path segment", prefix)
	}
	return nil
}
