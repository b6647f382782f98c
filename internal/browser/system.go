// Package browser serves the configured backup models and the files their
// storages hold. It joins the catalog with storage listers and exposes the
// result to the console views and the JSON API.
package browser

import (
	"context"
	"io"

	"github.com/JaimeStill/backup-service/internal/catalog"
	"github.com/JaimeStill/backup-service/internal/storage"
	"github.com/JaimeStill/backup-service/pkg/pagination"
)

// System defines read access to backup models and their stored files.
type System interface {
	// Models returns every configured model sorted by name.
	Models() []catalog.Model

	// Model returns the named model.
	// Returns catalog.ErrModelNotFound if the model is not configured.
	Model(name string) (catalog.Model, error)

	// Files returns a page of the files held by a model's storage. An empty
	// storage name selects the model's default storage.
	// Returns ErrInvalidSort if the page requests an unknown sort field.
	Files(ctx context.Context, model, storage string, page pagination.PageRequest) (*Listing, error)

	// Open resolves a file for download. The result carries either a direct
	// URL or a body the caller must close.
	Open(ctx context.Context, model, storage, filename string) (*Download, error)
}

// Listing is a page of files from one storage of a model.
type Listing struct {
	Model    string                                  `json:"model"`
	Storage  string                                  `json:"storage"`
	Storages []string                                `json:"storages"`
	Files    pagination.PageResult[storage.FileItem] `json:"files"`
}

// Download is a resolved file. URL is set when the storage serves the file
// directly; otherwise Body streams the contents and Size is its length, or -1
// when unknown.
type Download struct {
	Filename string
	Size     int64
	URL      string
	Body     io.ReadCloser
}
