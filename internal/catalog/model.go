package catalog

import (
	"fmt"
	"slices"

	"github.com/JaimeStill/backup-service/internal/storage"
)

// Schedule is when a model's backup runs. Cron takes precedence over Every.
type Schedule struct {
	Cron  string `json:"cron,omitempty"`
	Every string `json:"every,omitempty"`
	At    string `json:"at,omitempty"`
}

// Enabled reports whether the model runs on a schedule.
func (s Schedule) Enabled() bool {
	return s.Cron != "" || s.Every != ""
}

// String renders the schedule the way the backup agent prints it:
// "cron 5 4 * * sun", "every 1day at 0:30", "every 1day", or "disabled".
func (s Schedule) String() string {
	switch {
	case s.Cron != "":
		return "cron " + s.Cron
	case s.Every != "" && s.At != "":
		return fmt.Sprintf("every %s at %s", s.Every, s.At)
	case s.Every != "":
		return "every " + s.Every
	default:
		return "disabled"
	}
}

// Model is a configured backup model and the destinations it stores into.
type Model struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Schedule       Schedule         `json:"schedule"`
	Storages       []storage.Config `json:"storages"`
	DefaultStorage string           `json:"default_storage"`
}

// StorageNames returns the model's storage names in order.
func (m Model) StorageNames() []string {
	names := make([]string, len(m.Storages))
	for i, s := range m.Storages {
		names[i] = s.Name
	}
	return names
}

// Storage returns the named storage, or the default storage when name is empty.
func (m Model) Storage(name string) (storage.Config, error) {
	if name == "" {
		name = m.DefaultStorage
	}
	i := slices.IndexFunc(m.Storages, func(s storage.Config) bool { return s.Name == name })
	if i < 0 {
		return storage.Config{}, fmt.Errorf("%w: %s/%s", ErrStorageNotFound, m.Name, name)
	}
	return m.Storages[i], nil
}
