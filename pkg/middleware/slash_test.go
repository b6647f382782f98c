package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/backup-service/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.TrimSlash()(next)

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"root preserved", http.MethodGet, "/", http.StatusOK, ""},
		{"no slash passes", http.MethodGet, "/browser/daily", http.StatusOK, ""},
		{"trailing slash redirects", http.MethodGet, "/browser/daily/", http.StatusMovedPermanently, "/browser/daily"},
		{"query preserved", http.MethodGet, "/browser/daily/?page=2", http.StatusMovedPermanently, "/browser/daily?page=2"},
		{"post uses 308", http.MethodPost, "/models/", http.StatusPermanentRedirect, "/models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if loc := w.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
		})
	}
}
