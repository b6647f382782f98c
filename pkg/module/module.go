// Package module mounts self-contained HTTP handlers under single-segment path
// prefixes, each with its own middleware chain.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/backup-service/pkg/middleware"
)

// Module is an http.Handler served under a path prefix.
// The prefix "/" marks the root module, which receives paths unchanged.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
	handler    http.Handler
}

// New creates a module for prefix. It panics when the prefix is not "/" or a
// single segment with a leading slash, since that is a wiring error.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	m := &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
	m.build()
	return m
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's chain. Middleware is registered
// while wiring, before the module serves requests.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
	m.build()
}

// Handler returns the module router wrapped in its middleware. Middleware
// sees the full request path; the prefix is stripped just before routing so
// redirects and request logs keep the public URL.
func (m *Module) Handler() http.Handler {
	return m.handler
}

// Serve dispatches a request addressed to the module.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.handler.ServeHTTP(w, req)
}

func (m *Module) build() {
	m.handler = m.middleware.Apply(http.HandlerFunc(m.route))
}

func (m *Module) route(w http.ResponseWriter, req *http.Request) {
	if m.prefix == "/" {
		m.router.ServeHTTP(w, req)
		return
	}

	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := req.Clone(req.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.router.ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single segment: %s", prefix)
	}
	return nil
}
