package api

import (
	"net/http"

	"github.com/JaimeStill/backup-service/internal/browser"
	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/pkg/openapi"
	"github.com/JaimeStill/backup-service/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	browserHandler := browser.NewHandler(domain.Browser, runtime.Logger, runtime.Pagination, runtime.StreamBuffer)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		browserHandler.Routes(),
	)
}
