package browser

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/JaimeStill/backup-service/internal/catalog"
	"github.com/JaimeStill/backup-service/internal/storage"
	"github.com/JaimeStill/backup-service/pkg/pagination"
)

// ListerFactory builds the storage lister for a storage entry.
type ListerFactory func(ctx context.Context, cfg storage.Config, logger *slog.Logger) (storage.Lister, error)

// Option configures the browser system.
type Option func(*browser)

// WithListerFactory replaces storage.New as the lister constructor.
func WithListerFactory(f ListerFactory) Option {
	return func(b *browser) {
		b.factory = f
	}
}

type cachedLister struct {
	cfg    storage.Config
	lister storage.Lister
}

type browser struct {
	catalog    catalog.System
	logger     *slog.Logger
	pagination pagination.Config
	factory    ListerFactory

	mu      sync.Mutex
	listers map[string]cachedLister
}

// New creates the browser system over a catalog.
func New(cat catalog.System, logger *slog.Logger, pagination pagination.Config, opts ...Option) System {
	b := &browser{
		catalog:    cat,
		logger:     logger.With("system", "browser"),
		pagination: pagination,
		factory:    storage.New,
		listers:    make(map[string]cachedLister),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *browser) Models() []catalog.Model {
	return b.catalog.Models()
}

func (b *browser) Model(name string) (catalog.Model, error) {
	return b.catalog.Model(name)
}

func (b *browser) Files(ctx context.Context, model, storageName string, page pagination.PageRequest) (*Listing, error) {
	m, cfg, lister, err := b.resolve(ctx, model, storageName)
	if err != nil {
		return nil, err
	}

	page.Normalize(b.pagination)
	sorts := page.Sort
	if len(sorts) == 0 {
		sorts = defaultSort
	}
	if err := validateSort(sorts); err != nil {
		return nil, err
	}

	items, err := lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s: %w", m.Name, cfg.Name, err)
	}

	if page.Search != nil {
		items = filterFiles(items, *page.Search)
	}
	sortFiles(items, sorts)

	b.logger.Debug("files listed",
		"model", m.Name,
		"storage", cfg.Name,
		"total", len(items),
		"page", page.Page,
	)

	return &Listing{
		Model:    m.Name,
		Storage:  cfg.Name,
		Storages: m.StorageNames(),
		Files:    pagination.Slice(items, page),
	}, nil
}

func (b *browser) Open(ctx context.Context, model, storageName, filename string) (*Download, error) {
	m, cfg, lister, err := b.resolve(ctx, model, storageName)
	if err != nil {
		return nil, err
	}

	url, err := lister.DownloadURL(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("download url %s/%s: %w", m.Name, cfg.Name, err)
	}
	if url != "" {
		return &Download{Filename: path.Base(filename), Size: -1, URL: url}, nil
	}

	body, size, err := lister.Open(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("open %s/%s: %w", m.Name, cfg.Name, err)
	}

	return &Download{Filename: path.Base(filename), Size: size, Body: body}, nil
}

func (b *browser) resolve(ctx context.Context, model, storageName string) (catalog.Model, storage.Config, storage.Lister, error) {
	m, err := b.catalog.Model(model)
	if err != nil {
		return catalog.Model{}, storage.Config{}, nil, err
	}

	cfg, err := m.Storage(storageName)
	if err != nil {
		return catalog.Model{}, storage.Config{}, nil, err
	}

	lister, err := b.lister(ctx, m.Name, cfg)
	if err != nil {
		return catalog.Model{}, storage.Config{}, nil, err
	}

	return m, cfg, lister, nil
}

// lister returns the cached lister for a model's storage, rebuilding it when
// a catalog reload changed the storage entry.
func (b *browser) lister(ctx context.Context, model string, cfg storage.Config) (storage.Lister, error) {
	key := model + "/" + cfg.Name

	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.listers[key]; ok && c.cfg == cfg {
		return c.lister, nil
	}

	lister, err := b.factory(ctx, cfg, b.logger)
	if err != nil {
		return nil, fmt.Errorf("storage %s: %w", key, err)
	}
	b.listers[key] = cachedLister{cfg: cfg, lister: lister}
	return lister, nil
}

func filterFiles(items []storage.FileItem, search string) []storage.FileItem {
	search = strings.ToLower(search)
	filtered := items[:0:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Filename), search) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
