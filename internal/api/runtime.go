package api

import (
	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/internal/infrastructure"
	"github.com/JaimeStill/backup-service/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination   pagination.Config
	StreamBuffer int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Catalog:   infra.Catalog,
		},
		Pagination:   cfg.API.Pagination,
		StreamBuffer: cfg.API.StreamBufferBytes(),
	}
}
