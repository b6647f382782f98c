package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ErrMountNotFound indicates the rendered layout has no element carrying the mount id.
var ErrMountNotFound = errors.New("web: mount point not found")

// FindMount parses an HTML document and reports whether an element with the given id exists.
// It returns ErrMountNotFound when the id is absent.
func FindMount(r io.Reader, id string) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if findByID(doc, id) == nil {
		return fmt.Errorf("%w: #%s", ErrMountNotFound, id)
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// LocateMount renders layout with view and verifies the output contains the mount element.
func (ts *TemplateSet) LocateMount(layout string, view ViewDef, id string) error {
	var buf bytes.Buffer
	if err := ts.Execute(&buf, layout, view.Template, ts.NewData(view, nil)); err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}
	return FindMount(&buf, id)
}
