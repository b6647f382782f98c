package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to native handlers first, then to the module
// owning the first path segment, then to the root module.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
	root    *Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler that bypasses module dispatch.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module under its prefix.
func (r *Router) Mount(m *Module) {
	if m.prefix == "/" {
		r.root = m
		return
	}
	r.modules[m.prefix] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	if m, ok := r.modules[extractPrefix(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.root != nil {
		r.root.Serve(w, req)
		return
	}

	http.NotFound(w, req)
}

func extractPrefix(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}
