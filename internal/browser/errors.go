package browser

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/backup-service/internal/catalog"
	"github.com/JaimeStill/backup-service/internal/storage"
)

// ErrInvalidSort indicates a listing was requested with an unknown sort field.
var ErrInvalidSort = errors.New("browser: invalid sort field")

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// Unrecognized errors come from a storage backend and map to 502.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrModelNotFound),
		errors.Is(err, catalog.ErrStorageNotFound),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidKey), errors.Is(err, ErrInvalidSort):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, storage.ErrUnsupportedType):
		return http.StatusNotImplemented
	case errors.Is(err, storage.ErrInvalidConfig):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
