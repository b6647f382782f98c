// Package web provides infrastructure for serving server-rendered views with Go templates.
// Views are declared as an ordered table, parsed once at startup, and served through
// a pattern router with a fallback for unmatched paths.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/JaimeStill/backup-service/pkg/theme"
)

var (
	// ErrEmptyRoute indicates a routable view was declared without a route pattern.
	ErrEmptyRoute = errors.New("web: empty route")

	// ErrDuplicateRoute indicates two views share the same route pattern.
	ErrDuplicateRoute = errors.New("web: duplicate route")
)

// ViewDef defines a view with its route, template file, title, and bundle name.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Theme    theme.Theme
	Footer   string
	Data     any
}

// LoadFunc produces the view-specific data for a request along with the
// status code the view should be served with.
type LoadFunc func(r *http.Request) (data any, status int)

// Option configures a TemplateSet.
type Option func(*TemplateSet)

// WithTheme sets the theme included in every ViewData.
func WithTheme(t theme.Theme) Option {
	return func(ts *TemplateSet) {
		ts.theme = t
	}
}

// WithFooter sets footer text included in every ViewData.
// An empty string disables the footer.
func WithFooter(text string) Option {
	return func(ts *TemplateSet) {
		ts.footer = text
	}
}

// WithFuncs registers template functions available to layouts and views.
func WithFuncs(funcs template.FuncMap) Option {
	return func(ts *TemplateSet) {
		for k, v := range funcs {
			ts.funcs[k] = v
		}
	}
}

// TemplateSet holds pre-parsed templates and the values shared by every view.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	theme    theme.Theme
	footer   string
	funcs    template.FuncMap
}

// NewTemplateSet creates a TemplateSet by parsing layout templates and cloning them
// for each view. Parsing at startup means a broken template fails the process
// before any request is served.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef, opts ...Option) (*TemplateSet, error) {
	ts := &TemplateSet{
		views:    make(map[string]*template.Template, len(views)),
		basePath: basePath,
		theme:    theme.Default(),
		funcs:    template.FuncMap{},
	}
	for _, opt := range opts {
		opt(ts)
	}

	layouts, err := template.New("").Funcs(ts.funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		ts.views[v.Template] = t
	}

	return ts, nil
}

// ValidateViews checks that every view has a route and that no two views share one.
func ValidateViews(views []ViewDef) error {
	seen := make(map[string]struct{}, len(views))
	for _, v := range views {
		if v.Route == "" {
			return fmt.Errorf("%w: %s", ErrEmptyRoute, v.Template)
		}
		if _, ok := seen[v.Route]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, v.Route)
		}
		seen[v.Route] = struct{}{}
	}
	return nil
}

// BasePath returns the base path used for URL generation.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Theme returns the theme applied to every view.
func (ts *TemplateSet) Theme() theme.Theme {
	return ts.theme
}

// ErrorHandler returns an HTTP handler that renders an error view with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, status, layout, view.Template, ts.NewData(view, nil)); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// ViewHandler returns an HTTP handler that renders the given view without view data.
func (ts *TemplateSet) ViewHandler(layout string, view ViewDef) http.HandlerFunc {
	return ts.DataHandler(layout, view, nil)
}

// DataHandler returns an HTTP handler that renders the given view with the
// data and status produced by load. A nil load renders with status 200.
func (ts *TemplateSet) DataHandler(layout string, view ViewDef, load LoadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		var data any
		if load != nil {
			data, status = load(r)
		}
		if err := ts.Render(w, status, layout, view.Template, ts.NewData(view, data)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// NewData builds the ViewData for a view, including the shared theme and footer.
func (ts *TemplateSet) NewData(view ViewDef, data any) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		Theme:    ts.theme,
		Footer:   ts.footer,
		Data:     data,
	}
}

// Render executes the named layout template for a view and writes it with the given status.
// Output is buffered so a failed execution never writes a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layoutName, viewPath string, data ViewData) error {
	var buf bytes.Buffer
	if err := ts.Execute(&buf, layoutName, viewPath, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Execute runs the named layout template for a view into buf.
func (ts *TemplateSet) Execute(buf *bytes.Buffer, layoutName, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}
	return t.ExecuteTemplate(buf, layoutName, data)
}
