// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/andrew-x/card-counter/auth"
	"github.com/andrew-x/card-counter/cliparse"
	"github.com/andrew-x/card-counter/db"
	"github.com/andrew-x/card-counter/gamestore"
	"github.com/andrew-x/card-counter/models"
)

// OpenTestDB opens a fresh sqlite database in a per-test temp dir with
// the schema applied. Closed automatically when the test ends.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          4170,
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		Password:      "test-password",
		Presets:       models.BuiltinPresets(),
	}
}

// NewTestStore returns a hydrated, empty store with no persistence.
func NewTestStore(t *testing.T) *gamestore.Store {
	t.Helper()

	store := gamestore.New(nil)
	store.Hydrate(nil)
	return store
}

// NewPersistedTestStore returns a hydrated store writing through to a
// sqlite-backed snapshot store, plus the snapshot store itself.
func NewPersistedTestStore(t *testing.T) (*gamestore.Store, *db.SnapshotStore) {
	t.Helper()

	snapshots := db.NewSnapshotStore(OpenTestDB(t), "sqlite")
	store := gamestore.New(snapshots)

	games, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}
	store.Hydrate(games)
	return store, snapshots
}

// CreateTestGame adds a game with the given players and the default
// value map.
func CreateTestGame(t *testing.T, store *gamestore.Store, title string, playerNames ...string) *models.Game {
	t.Helper()

	players := make([]models.Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, models.Player{Name: name})
	}
	return store.CreateGame(title, players, models.DefaultValueMap())
}

// PlayerID looks up a player id by name. Fails the test if absent.
func PlayerID(t *testing.T, game *models.Game, name string) string {
	t.Helper()

	for _, p := range game.Players {
		if p.Name == name {
			return p.ID
		}
	}
	t.Fatalf("Player %q not in game %q", name, game.Title)
	return ""
}

// LoginCookie mints a valid session cookie for secured requests.
func LoginCookie(t *testing.T, cfg cliparse.Config) *http.Cookie {
	t.Helper()

	token, err := auth.CreateSessionToken(cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
