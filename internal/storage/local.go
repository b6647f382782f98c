package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// local implements Lister for archives kept on the local filesystem,
// with filenames mapping directly to paths under the base directory.
type local struct {
	basePath string
	logger   *slog.Logger
}

func newLocal(cfg Config, logger *slog.Logger) (*local, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: path required", ErrInvalidConfig)
	}

	absPath, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	return &local{
		basePath: absPath,
		logger:   logger,
	}, nil
}

// List walks the base directory. A missing base directory yields no files,
// since a model that has not run yet has nothing stored.
func (l *local) List(ctx context.Context) ([]FileItem, error) {
	items := []FileItem{}

	err := filepath.WalkDir(l.basePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == l.basePath && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(l.basePath, p)
		if err != nil {
			return err
		}

		items = append(items, FileItem{
			Filename:     filepath.ToSlash(rel),
			Size:         info.Size(),
			LastModified: info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		return nil, fmt.Errorf("walk %s: %w", l.basePath, err)
	}

	l.logger.Debug("listed files", "count", len(items))
	return items, nil
}

func (l *local) Open(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	path, err := l.resolve(filename)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNotFound
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, 0, ErrPermissionDenied
		}
		return nil, 0, fmt.Errorf("open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, ErrNotFound
	}

	return f, info.Size(), nil
}

// DownloadURL is always empty: local files are streamed.
func (l *local) DownloadURL(ctx context.Context, filename string) (string, error) {
	if _, err := l.fullPath(filename); err != nil {
		return "", err
	}
	return "", nil
}

func (l *local) fullPath(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(l.basePath, filepath.FromSlash(cleaned))

	if !strings.HasPrefix(fullPath, l.basePath+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return fullPath, nil
}

// resolve returns the path of a stored file with symlinks evaluated. A path
// reaching its target through a symlink is reported as not found, matching
// List, which never follows links.
func (l *local) resolve(key string) (string, error) {
	fullPath, err := l.fullPath(key)
	if err != nil {
		return "", err
	}

	base, err := filepath.EvalSymlinks(l.basePath)
	if err != nil {
		return "", mapPathError(err)
	}

	resolved, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", mapPathError(err)
	}

	rel, _ := filepath.Rel(l.basePath, fullPath)
	if resolved != filepath.Join(base, rel) {
		l.logger.Warn("rejected symlinked path", "filename", key)
		return "", ErrNotFound
	}

	return resolved, nil
}

func mapPathError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fmt.Errorf("resolve path: %w", err)
	}
}
