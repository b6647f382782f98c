// Package routes declares HTTP routes alongside their OpenAPI operations so a
// single declaration drives both mux registration and API documentation.
package routes

import (
	"net/http"

	"github.com/JaimeStill/backup-service/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// Pattern uses net/http wildcard syntax and is relative to its group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
