package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/backup-service/pkg/middleware"
)

func TestBasicAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		username   string
		password   string
		reqUser    string
		reqPass    string
		setAuth    bool
		wantStatus int
	}{
		{"disabled", "", "", "", "", false, http.StatusOK},
		{"missing credentials", "admin", "secret", "", "", false, http.StatusUnauthorized},
		{"wrong password", "admin", "secret", "admin", "nope", true, http.StatusUnauthorized},
		{"valid", "admin", "secret", "admin", "secret", true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.reqUser, tt.reqPass)
			}
			w := httptest.NewRecorder()

			middleware.BasicAuth("Backup Service", tt.username, tt.password)(ok).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header not set")
			}
		})
	}
}
