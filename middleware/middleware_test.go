// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrew-x/card-counter/auth"
	"github.com/andrew-x/card-counter/models"
)

func TestRequireSession(t *testing.T) {
	const secret = "test-secret"

	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	guarded := RequireSession(secret, next)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/games", nil)
		w := httptest.NewRecorder()
		guarded(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/games", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})
		w := httptest.NewRecorder()
		guarded(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := auth.CreateSessionToken(secret)
		if err != nil {
			t.Fatalf("Failed to create token: %v", err)
		}
		req := httptest.NewRequest("GET", "/games", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		guarded(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("token signed with other secret", func(t *testing.T) {
		token, err := auth.CreateSessionToken("other-secret")
		if err != nil {
			t.Fatalf("Failed to create token: %v", err)
		}
		req := httptest.NewRequest("GET", "/games", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		guarded(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", w.Code)
		}
	})
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Game not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Error != "Not Found" || resp.Message != "Game not found" {
		t.Errorf("Unexpected body: %+v", resp)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echoed, got %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name:     "x-forwarded-for single",
			setup:    func(r *http.Request) { r.Header.Set("X-Forwarded-For", "1.2.3.4") },
			expected: "1.2.3.4",
		},
		{
			name:     "x-forwarded-for chain",
			setup:    func(r *http.Request) { r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8") },
			expected: "1.2.3.4",
		},
		{
			name:     "x-real-ip",
			setup:    func(r *http.Request) { r.Header.Set("X-Real-IP", "9.8.7.6") },
			expected: "9.8.7.6",
		},
		{
			name:     "remote addr fallback",
			setup:    func(r *http.Request) {},
			expected: "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			tt.setup(req)
			if got := GetClientIP(req); got != tt.expected {
				t.Errorf("GetClientIP = %q, want %q", got, tt.expected)
			}
		})
	}
}
