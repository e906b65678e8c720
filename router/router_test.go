// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrew-x/card-counter/models"
	"github.com/andrew-x/card-counter/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestStore(t), nil, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestStore(t), nil, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "card-counter API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestSecuredRoutesRequireSession(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestStore(t), nil, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/games"},
		{"GET", "/games"},
		{"GET", "/games/test-id"},
		{"PATCH", "/games/test-id"},
		{"DELETE", "/games/test-id"},
		{"DELETE", "/games"},
		{"POST", "/games/test-id/rounds"},
		{"PUT", "/games/test-id/rounds/test-round"},
		{"DELETE", "/games/test-id/rounds/test-round"},
		{"GET", "/presets"},
		{"POST", "/scan"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 without session, got %d", w.Code)
			}
		})
	}
}

func TestSessionCookieUnlocksRoutes(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := testutil.NewTestStore(t)
	mux := NewRouter(store, nil, cfg)

	cookie := testutil.LoginCookie(t, cfg)

	req := testutil.MakeRequest("GET", "/games", nil, cookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with session cookie, got %d. Body: %s", w.Code, w.Body.String())
	}

	var games []*models.Game
	if err := json.NewDecoder(w.Body).Decode(&games); err != nil {
		t.Fatalf("Failed to decode games list: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected empty games list, got %d", len(games))
	}
}

func TestLoginThroughRouter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestStore(t), nil, cfg)

	// Log in
	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{Password: cfg.Password})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login failed: %d - %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login set no cookies")
	}

	// Use the issued cookie on a secured route
	req = testutil.MakeRequest("POST", "/games", models.CreateGameRequest{
		Title:   "Hearts",
		Players: []string{"Alice", "Bob"},
	}, cookies...)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201 after login, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestPathParameterExtraction(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := testutil.NewTestStore(t)
	game := testutil.CreateTestGame(t, store, "Gin", "Alice", "Bob")
	mux := NewRouter(store, nil, cfg)

	cookie := testutil.LoginCookie(t, cfg)

	req := testutil.MakeRequest("GET", "/games/"+game.ID, nil, cookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var fetched models.Game
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("Failed to decode game: %v", err)
	}
	if fetched.ID != game.ID {
		t.Errorf("Expected game %s, got %s", game.ID, fetched.ID)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestStore(t), nil, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/games"},
		{"POST", "/games/test-id/rounds/test-round"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
