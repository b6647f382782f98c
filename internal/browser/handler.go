package browser

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/backup-service/pkg/handlers"
	"github.com/JaimeStill/backup-service/pkg/pagination"
	"github.com/JaimeStill/backup-service/pkg/routes"
)

// Handler serves the browser system as a JSON API.
type Handler struct {
	sys          System
	logger       *slog.Logger
	pagination   pagination.Config
	streamBuffer int64
}

const defaultStreamBuffer = 32 * 1024

// NewHandler creates a Handler. streamBuffer sizes the copy buffer used for
// downloads streamed through the service; a non-positive value uses 32KB.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, streamBuffer int64) *Handler {
	if streamBuffer <= 0 {
		streamBuffer = defaultStreamBuffer
	}
	return &Handler{
		sys:          sys,
		logger:       logger,
		pagination:   pagination,
		streamBuffer: streamBuffer,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/models",
		Tags:        []string{"Models"},
		Description: "Configured backup models",
		Schemas:     Schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.ListModels, OpenAPI: Spec.ListModels},
			{Method: "GET", Pattern: "/{model}", Handler: h.GetModel, OpenAPI: Spec.GetModel},
		},
		Children: []routes.Group{
			{
				Prefix:      "/{model}/files",
				Tags:        []string{"Files"},
				Description: "Backup files held by a model's storages",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.ListFiles, OpenAPI: Spec.ListFiles},
					{Method: "GET", Pattern: "/{filename...}", Handler: h.Download, OpenAPI: Spec.Download},
				},
			},
		},
	}
}

func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Models())
}

func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.sys.Model(r.PathValue("model"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.Files(r.Context(), r.PathValue("model"), r.URL.Query().Get("storage"), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Download redirects to the storage's direct URL when it has one and
// otherwise streams the file as an attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	dl, err := h.sys.Open(
		r.Context(),
		r.PathValue("model"),
		r.URL.Query().Get("storage"),
		r.PathValue("filename"),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if dl.URL != "" {
		http.Redirect(w, r, dl.URL, http.StatusFound)
		return
	}
	defer dl.Body.Close()

	if err := handlers.RespondAttachment(w, dl.Filename, dl.Size, dl.Body, make([]byte, h.streamBuffer)); err != nil {
		// Headers are already written; the client sees a truncated body.
		h.logger.Warn("download interrupted", "filename", dl.Filename, "error", err)
	}
}
