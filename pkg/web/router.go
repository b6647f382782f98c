package web

import "net/http"

var methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Router wraps http.ServeMux and renders a fallback handler for requests
// whose path matches no registered pattern. A path registered under another
// method is left to the mux, which answers 405 with an Allow header.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler for the given pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for the given pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler used when no pattern matches.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// ServeHTTP dispatches to the matching handler, or to the fallback when set.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" && !r.pathRegistered(req) {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

// pathRegistered reports whether any method has a pattern for the request path.
func (r *Router) pathRegistered(req *http.Request) bool {
	probe := req.Clone(req.Context())
	for _, m := range methods {
		if m == req.Method {
			continue
		}
		probe.Method = m
		if _, pattern := r.mux.Handler(probe); pattern != "" {
			return true
		}
	}
	return false
}
