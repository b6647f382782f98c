package browser

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/JaimeStill/backup-service/internal/storage"
	"github.com/JaimeStill/backup-service/pkg/pagination"
)

// Sortable file listing fields.
const (
	SortFilename     = "filename"
	SortSize         = "size"
	SortLastModified = "last_modified"
)

// Newest backups first.
var defaultSort = pagination.SortFields{{Field: SortLastModified, Descending: true}}

var compareFields = map[string]func(a, b storage.FileItem) int{
	SortFilename: func(a, b storage.FileItem) int {
		return cmp.Compare(a.Filename, b.Filename)
	},
	SortSize: func(a, b storage.FileItem) int {
		return cmp.Compare(a.Size, b.Size)
	},
	SortLastModified: func(a, b storage.FileItem) int {
		return a.LastModified.Compare(b.LastModified)
	},
}

func validateSort(fields pagination.SortFields) error {
	for _, f := range fields {
		if _, ok := compareFields[f.Field]; !ok {
			return fmt.Errorf("%w: %s", ErrInvalidSort, f.Field)
		}
	}
	return nil
}

// sortFiles orders items by fields, breaking ties by filename.
func sortFiles(items []storage.FileItem, fields pagination.SortFields) {
	slices.SortStableFunc(items, func(a, b storage.FileItem) int {
		for _, f := range fields {
			c := compareFields[f.Field](a, b)
			if f.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Filename, b.Filename)
	})
}
