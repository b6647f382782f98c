// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (lifecycle, logging, backup catalog) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/backup-service/internal/catalog"
	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/internal/lifecycle"
	"github.com/JaimeStill/backup-service/pkg/logging"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Catalog   catalog.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging.Config)

	cat, err := catalog.New(&cfg.Catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Catalog:   cat,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Catalog.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("catalog start failed: %w", err)
	}
	return nil
}
