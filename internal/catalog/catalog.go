// Package catalog exposes the backup models defined in the backup agent's
// YAML configuration. The catalog is read once at startup and can be
// reloaded on demand or whenever the file changes.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/JaimeStill/backup-service/internal/config"
	"github.com/JaimeStill/backup-service/internal/lifecycle"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// System provides read access to the configured backup models.
type System interface {
	// Models returns every model sorted by name.
	Models() []Model

	// Model returns the named model or ErrModelNotFound.
	Model(name string) (Model, error)

	// ConfigFile returns the file the catalog was read from, or "" when none was found.
	ConfigFile() string

	// UpdatedAt returns when the current snapshot was loaded.
	UpdatedAt() time.Time

	// Reload re-reads the configuration file. On failure the previous
	// snapshot stays in place.
	Reload() error

	// Start begins watching the configuration file when watching is enabled.
	Start(lc *lifecycle.Coordinator) error
}

type snapshot struct {
	models    map[string]Model
	names     []string
	file      string
	updatedAt time.Time
}

type catalog struct {
	file   string
	watch  bool
	logger *slog.Logger

	reloadMu sync.Mutex
	mu       sync.RWMutex
	current  snapshot
}

// New reads the catalog. An explicit ConfigFile that does not exist returns
// ErrConfigNotFound. With no explicit file, the agent's default locations are
// searched and an empty catalog is served when none is found.
func New(cfg *config.CatalogConfig, logger *slog.Logger) (System, error) {
	c := &catalog{
		file:   cfg.ConfigFile,
		watch:  cfg.Watch,
		logger: logger.With("system", "catalog"),
	}

	if c.file != "" {
		if _, err := os.Stat(c.file); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, c.file)
		}
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *catalog) Models() []Model {
	c.mu.RLock()
	defer c.mu.RUnlock()

	models := make([]Model, 0, len(c.current.names))
	for _, name := range c.current.names {
		models = append(models, c.current.models[name])
	}
	return models
}

func (c *catalog) Model(name string) (Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.current.models[strings.ToLower(name)]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return m, nil
}

func (c *catalog) ConfigFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.file
}

func (c *catalog) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.updatedAt
}

func (c *catalog) Reload() error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	v := newViper(c.file)
	if err := v.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			c.logger.Warn("backup config not found, serving empty catalog", "name", configName, "paths", searchPaths)
			c.replace(snapshot{models: map[string]Model{}})
			return nil
		}
		return fmt.Errorf("read catalog: %w", err)
	}

	models, err := parseModels(v)
	if err != nil {
		return fmt.Errorf("parse catalog %s: %w", v.ConfigFileUsed(), err)
	}

	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	slices.Sort(names)

	c.replace(snapshot{
		models: models,
		names:  names,
		file:   v.ConfigFileUsed(),
	})
	c.logger.Info("catalog loaded", "file", v.ConfigFileUsed(), "models", len(names))
	return nil
}

func (c *catalog) replace(s snapshot) {
	s.updatedAt = time.Now()
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
}

// Start registers a file watcher that reloads the catalog on change.
// Watching is skipped when disabled or when no file was found.
func (c *catalog) Start(lc *lifecycle.Coordinator) error {
	file := c.ConfigFile()
	if !c.watch || file == "" {
		return nil
	}

	lc.OnStartup(func() {
		v := newViper(file)
		if err := v.ReadInConfig(); err != nil {
			c.logger.Error("catalog watch failed", "file", file, "error", err)
			return
		}
		v.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			c.logger.Info("catalog changed", "file", e.Name, "op", e.Op.String())
			if err := c.Reload(); err != nil {
				c.logger.Error("catalog reload failed", "error", err)
			}
		})
		v.WatchConfig()
		c.logger.Info("watching catalog", "file", file)
	})

	return nil
}
