package catalog

import "errors"

var (
	// ErrModelNotFound indicates no model with the requested name is configured.
	ErrModelNotFound = errors.New("catalog: model not found")

	// ErrStorageNotFound indicates the model has no storage with the requested name.
	ErrStorageNotFound = errors.New("catalog: storage not found")

	// ErrConfigNotFound indicates an explicitly configured file does not exist.
	ErrConfigNotFound = errors.New("catalog: config file not found")

	// ErrInvalidModel indicates a model entry that cannot be served.
	ErrInvalidModel = errors.New("catalog: invalid model")
)
