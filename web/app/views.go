package app

import (
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/JaimeStill/backup-service/internal/browser"
	"github.com/JaimeStill/backup-service/pkg/pagination"
)

// views loads the data each console view renders.
type views struct {
	browser    browser.System
	logger     *slog.Logger
	basePath   string
	apiBase    string
	pagination pagination.Config
}

type modelRow struct {
	Name        string
	Description string
	Schedule    string
	Scheduled   bool
	Storages    []string
	URL         string
}

type homeData struct {
	Models []modelRow
}

type storageTab struct {
	Name   string
	URL    string
	Active bool
}

type fileRow struct {
	Filename     string
	Size         int64
	LastModified time.Time
	URL          string
}

type browserData struct {
	Model      string
	Error      string
	Storage    string
	Storages   []storageTab
	Search     string
	Files      []fileRow
	Page       int
	TotalPages int
	Total      int
	PrevURL    string
	NextURL    string
}

func (v *views) home(r *http.Request) (any, int) {
	models := v.browser.Models()
	rows := make([]modelRow, 0, len(models))
	for _, m := range models {
		rows = append(rows, modelRow{
			Name:        m.Name,
			Description: m.Description,
			Schedule:    m.Schedule.String(),
			Scheduled:   m.Schedule.Enabled(),
			Storages:    m.StorageNames(),
			URL:         v.modelURL(m.Name, nil),
		})
	}
	return homeData{Models: rows}, http.StatusOK
}

func (v *views) files(r *http.Request) (any, int) {
	model := r.PathValue("model")
	storageName := r.URL.Query().Get("storage")
	page := pagination.PageRequestFromQuery(r.URL.Query(), v.pagination)

	data := browserData{Model: model, Storage: storageName}
	if page.Search != nil {
		data.Search = *page.Search
	}

	listing, err := v.browser.Files(r.Context(), model, storageName, page)
	if err != nil {
		status := browser.MapHTTPStatus(err)
		v.logger.Warn("list files failed", "model", model, "storage", storageName, "status", status, "error", err)
		data.Error = err.Error()
		return data, status
	}

	data.Storage = listing.Storage
	for _, name := range listing.Storages {
		q := url.Values{}
		if name != listing.Storage {
			q.Set("storage", name)
		}
		data.Storages = append(data.Storages, storageTab{
			Name:   name,
			URL:    v.modelURL(model, q),
			Active: name == listing.Storage,
		})
	}

	for _, item := range listing.Files.Data {
		data.Files = append(data.Files, fileRow{
			Filename:     item.Filename,
			Size:         item.Size,
			LastModified: item.LastModified,
			URL:          v.downloadURL(model, storageName, item.Filename),
		})
	}

	result := listing.Files
	data.Page = result.Page
	data.TotalPages = result.TotalPages
	data.Total = result.Total

	if result.HasPrev() {
		data.PrevURL = v.pageURL(model, storageName, page, result.Page-1)
	}
	if result.HasNext() {
		data.NextURL = v.pageURL(model, storageName, page, result.Page+1)
	}

	return data, http.StatusOK
}

func (v *views) modelURL(model string, q url.Values) string {
	u := path.Join(v.basePath, "/browser", url.PathEscape(model))
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (v *views) pageURL(model, storageName string, req pagination.PageRequest, page int) string {
	req.Page = page
	q := req.Query()
	if storageName != "" {
		q.Set("storage", storageName)
	}
	return v.modelURL(model, q)
}

// downloadURL points at the API download endpoint, escaping each filename
// segment so nested keys keep their slashes.
func (v *views) downloadURL(model, storageName, filename string) string {
	segments := strings.Split(filename, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	u := strings.TrimSuffix(v.apiBase, "/") + "/models/" + url.PathEscape(model) + "/files/" + strings.Join(segments, "/")
	if storageName != "" {
		u += "?" + url.Values{"storage": {storageName}}.Encode()
	}
	return u
}
