package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/backup-service/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Register adds every route of the groups, and of their children, to mux and
// documents them in spec under basePath. Mux patterns stay relative to the
// module, which strips basePath before dispatch. A nil spec skips documentation.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
		if spec != nil {
			g.AddToSpec(basePath, spec)
		}
	}
}

func (g Group) register(mux *http.ServeMux, parent string) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}

// AddToSpec documents the group's routes under basePath. Routes without an
// operation are served but left out of the document. Operations without
// tags inherit the group's tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	if len(g.Schemas) > 0 {
		if spec.Components == nil {
			spec.Components = &openapi.Components{}
		}
		spec.Components.AddSchemas(g.Schemas)
	}

	prefix := strings.TrimSuffix(basePath, "/") + g.Prefix
	for _, r := range g.Routes {
		if r.OpenAPI == nil {
			continue
		}
		op := r.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(specPath(prefix+r.Pattern), r.Method, op)
	}

	for _, child := range g.Children {
		child.AddToSpec(prefix, spec)
	}
}

// specPath converts a mux pattern to an OpenAPI path: the {$} anchor is
// dropped and {name...} wildcards become {name}.
func specPath(pattern string) string {
	pattern = strings.TrimSuffix(pattern, "{$}")
	pattern = strings.ReplaceAll(pattern, "...}", "}")
	if pattern == "" {
		return "/"
	}
	return pattern
}
