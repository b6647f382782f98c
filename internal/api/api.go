// Package api assembles the JSON API module: the browser routes, their
// OpenAPI document, and the middleware chain served under the API base path.
package api

import (
	"net/http"

	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/internal/infrastructure"
	"github.com/JaimeStill/backup-service/pkg/middleware"
	"github.com/JaimeStill/backup-service/pkg/module"
	"github.com/JaimeStill/backup-service/pkg/openapi"
)

// Module is the API module together with the domain it serves, so other
// modules can share the same domain systems.
type Module struct {
	*module.Module
	Domain *Domain
}

// NewModule builds the API module.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	cfg.API.OpenAPI.Apply(spec)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.RateLimit(&cfg.API.RateLimit))
	m.Use(middleware.BasicAuth("Backup Service", cfg.App.Username, cfg.App.Password))

	return &Module{Module: m, Domain: domain}, nil
}
