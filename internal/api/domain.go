package api

import "github.com/JaimeStill/backup-service/internal/browser"

// Domain holds the domain systems served by the API.
type Domain struct {
	Browser browser.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Browser: browser.New(runtime.Catalog, runtime.Logger, runtime.Pagination),
	}
}
