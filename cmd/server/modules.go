package main

import (
	"net/http"

	"github.com/JaimeStill/backup-service/internal/api"
	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/internal/infrastructure"
	"github.com/JaimeStill/backup-service/pkg/middleware"
	"github.com/JaimeStill/backup-service/pkg/module"
	"github.com/JaimeStill/backup-service/web/app"
)

// Modules holds the HTTP modules mounted on the root router.
type Modules struct {
	API *api.Module
	App *module.Module
}

// NewModules builds the API and the console. The console reads through the
// API's browser system so both surfaces share one lister cache.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(cfg.App.BasePath, app.Options{
		Footer:     cfg.App.Footer,
		Browser:    apiModule.Domain.Browser,
		APIBase:    cfg.API.BasePath,
		Pagination: cfg.API.Pagination,
		Logger:     infra.Logger,
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.RequestID())
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))
	appModule.Use(middleware.BasicAuth("Backup Service", cfg.App.Username, cfg.App.Password))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

// Mount registers every module on the router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
