// Package storage lists and reads backup archives from the destinations a
// backup model stores into. Each destination type implements Lister; New
// selects the implementation from the storage entry's type.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"
)

// Storage types understood by New.
const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeMinio = "minio"
)

// FileItem describes a single stored backup file.
type FileItem struct {
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Config describes one storage destination of a backup model.
type Config struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Path            string `json:"path,omitempty"`
	Bucket          string `json:"bucket,omitempty"`
	Region          string `json:"region,omitempty"`
	Endpoint        string `json:"endpoint,omitempty"`
	AccessKeyID     string `json:"-"`
	SecretAccessKey string `json:"-"`
	Token           string `json:"-"`

	// Presign makes DownloadURL return a time-limited object URL instead of
	// streaming the file through the service.
	Presign       bool          `json:"presign,omitempty"`
	PresignExpiry time.Duration `json:"-"`
}

// Lister reads backup files from a storage destination.
type Lister interface {
	// List returns every file under the destination root. Filenames are
	// slash-separated and relative to the root.
	List(ctx context.Context) ([]FileItem, error)

	// Open returns a reader for filename and its size in bytes.
	// Returns ErrNotFound if the file does not exist.
	// Returns ErrInvalidKey if the filename is malformed.
	Open(ctx context.Context, filename string) (io.ReadCloser, int64, error)

	// DownloadURL returns a direct download URL for filename, or an empty
	// string when the file must be streamed through Open.
	DownloadURL(ctx context.Context, filename string) (string, error)
}

// New creates the Lister for cfg.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (Lister, error) {
	logger = logger.With("system", "storage", "storage", cfg.Name, "type", cfg.Type)

	switch cfg.Type {
	case TypeLocal:
		return newLocal(cfg, logger)
	case TypeS3, TypeMinio:
		return newS3(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, cfg.Type)
	}
}

// cleanKey validates a slash-separated filename relative to a storage root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}

	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}

	return cleaned, nil
}
