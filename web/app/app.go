// Package app provides the backup console: an ordered route table of
// server-rendered views and the bootstrap that validates the shell before
// anything is served.
package app

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/JaimeStill/backup-service/internal/browser"
	"github.com/JaimeStill/backup-service/pkg/module"
	"github.com/JaimeStill/backup-service/pkg/pagination"
	"github.com/JaimeStill/backup-service/pkg/theme"
	"github.com/JaimeStill/backup-service/pkg/web"
	"github.com/docker/go-units"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const (
	// Layout is the shell template every view renders into.
	Layout = "app.html"

	// MountID is the id of the element routed content renders under.
	MountID = "root"

	// FooterText is rendered below routed content when the footer is enabled.
	FooterText = "Backup Service @ 2024"
)

var publicFiles = []string{"favicon.svg"}

var errorViews = []web.ViewDef{
	{Template: "404.html", Title: "Not Found", Bundle: "app"},
}

// Routes returns the console route table in priority order.
func Routes() []web.ViewDef {
	return []web.ViewDef{
		{Route: "/{$}", Template: "home.html", Title: "Backups", Bundle: "app"},
		{Route: "/browser/{model}", Template: "browser.html", Title: "Files", Bundle: "app"},
	}
}

// NotFound returns the view rendered for paths matching no route.
func NotFound() web.ViewDef {
	return errorViews[0]
}

// Options configures the console module.
type Options struct {
	// Footer renders FooterText below routed content on every page.
	Footer bool

	// Browser supplies models and file listings to the views.
	Browser browser.System

	// APIBase is the path download links are built under.
	APIBase string

	Pagination pagination.Config
	Logger     *slog.Logger
}

// NewModule bootstraps the console under basePath. Templates are parsed,
// the route table validated, and the shell checked for its mount point once;
// a missing mount point returns web.ErrMountNotFound and nothing is served.
func NewModule(basePath string, opts Options) (*module.Module, error) {
	return newModule(layoutFS, basePath, opts)
}

func newModule(layouts fs.FS, basePath string, opts Options) (*module.Module, error) {
	if opts.Browser == nil {
		return nil, errors.New("app: browser system required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("module", "app")

	routes := Routes()
	if err := web.ValidateViews(routes); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	webOpts := []web.Option{
		web.WithTheme(theme.Default()),
		web.WithFuncs(template.FuncMap{
			"href":      hrefFunc(basePath),
			"humanSize": humanSize,
			"timestamp": timestamp,
		}),
	}
	if opts.Footer {
		webOpts = append(webOpts, web.WithFooter(FooterText))
	}

	ts, err := web.NewTemplateSet(
		layouts,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		append(routes, errorViews...),
		webOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if err := ts.LocateMount(Layout, NotFound(), MountID); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	v := &views{
		browser:    opts.Browser,
		logger:     logger,
		basePath:   basePath,
		apiBase:    opts.APIBase,
		pagination: opts.Pagination,
	}

	logger.Info("console bootstrapped", "base_path", basePath, "routes", len(routes), "footer", opts.Footer)
	return module.New(basePath, buildRouter(ts, v, routes)), nil
}

func buildRouter(ts *web.TemplateSet, v *views, routes []web.ViewDef) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(Layout, NotFound(), http.StatusNotFound))

	loaders := map[string]web.LoadFunc{
		"home.html":    v.home,
		"browser.html": v.files,
	}
	for _, view := range routes {
		r.HandleFunc("GET "+view.Route, ts.DataHandler(Layout, view, loaders[view.Template]))
	}

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

// hrefFunc joins a site path onto the module base path.
func hrefFunc(basePath string) func(string) string {
	return func(p string) string {
		joined := path.Join(basePath, p)
		if p != "/" && len(p) > 0 && p[len(p)-1] == '/' {
			joined += "/"
		}
		return joined
	}
}

func humanSize(size int64) string {
	return units.HumanSize(float64(size))
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
