package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// PublicRoute is a single GET route serving a file from a public directory.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer returns a handler serving files from subdir of fsys under the URL prefix.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile returns a handler serving a single named file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

// PublicFileRoutes returns a root-level GET route for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, PublicRoute{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}

// ServeEmbeddedFile returns a handler writing data with the given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
