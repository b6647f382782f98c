package storage

import "errors"

// Storage errors returned by Lister implementations.
var (
	// ErrNotFound indicates the requested file does not exist in storage.
	ErrNotFound = errors.New("storage: file not found")

	// ErrPermissionDenied indicates insufficient permissions to access the file.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the filename is malformed.
	// This includes empty names, absolute paths, and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")

	// ErrUnsupportedType indicates a storage type that cannot be browsed.
	ErrUnsupportedType = errors.New("storage: unsupported type")

	// ErrInvalidConfig indicates a storage entry is missing required settings.
	ErrInvalidConfig = errors.New("storage: invalid config")
)
