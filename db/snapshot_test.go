// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"maps"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/andrew-x/card-counter/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func testGames() []*models.Game {
	now := time.Date(2025, 6, 1, 20, 30, 0, 0, time.UTC)
	return []*models.Game{
		{
			ID:    "game-1",
			Title: "Poker Night",
			Players: []models.Player{
				{ID: "p-alice", Name: "Alice"},
				{ID: "p-bob", Name: "Bob"},
			},
			ValueMap: models.DefaultValueMap(),
			Rounds: []models.Round{
				{ID: "r-1", ValueMap: models.DefaultValueMap(), Scores: map[string]int{"p-alice": 5, "p-bob": 10}, CreatedAt: now.Add(10 * time.Minute)},
				{ID: "r-2", ValueMap: models.DefaultValueMap(), Scores: map[string]int{"p-alice": 3}, CreatedAt: now.Add(25 * time.Minute)},
			},
			Totals:    map[string]int{"p-alice": 8, "p-bob": 10},
			CreatedAt: now,
		},
		{
			ID:    "game-2",
			Title: "Rummy",
			Players: []models.Player{
				{ID: "p-carol", Name: "Carol"},
			},
			ValueMap: models.SplitValueMap(),
			Rounds: []models.Round{
				{ID: "r-3", ValueMap: models.SplitValueMap(), Scores: map[string]int{"p-carol": -4, "p-ghost": 2}, CreatedAt: now.Add(time.Hour)},
			},
			Totals:    map[string]int{"p-carol": -4, "p-ghost": 2},
			CreatedAt: now.Add(30 * time.Minute),
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snapshots := NewSnapshotStore(openTestDB(t), "sqlite")

	games := testGames()
	if err := snapshots.Save(games); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(games) {
		t.Fatalf("Expected %d games, got %d", len(games), len(loaded))
	}

	for i, want := range games {
		got := loaded[i]
		if got.ID != want.ID || got.Title != want.Title {
			t.Errorf("Game %d: got %s/%s, want %s/%s", i, got.ID, got.Title, want.ID, want.Title)
		}
		if len(got.Players) != len(want.Players) {
			t.Fatalf("Game %d: expected %d players, got %d", i, len(want.Players), len(got.Players))
		}
		for j := range want.Players {
			if got.Players[j] != want.Players[j] {
				t.Errorf("Game %d player %d: got %+v, want %+v", i, j, got.Players[j], want.Players[j])
			}
		}
		if !maps.Equal(got.ValueMap, want.ValueMap) {
			t.Errorf("Game %d: value map mismatch", i)
		}
		if !maps.Equal(got.Totals, want.Totals) {
			t.Errorf("Game %d: totals mismatch: got %v, want %v", i, got.Totals, want.Totals)
		}
		// Dates must come back as parsed timestamps, equal to the
		// instant that was saved.
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("Game %d: createdAt %v, want %v", i, got.CreatedAt, want.CreatedAt)
		}
		if len(got.Rounds) != len(want.Rounds) {
			t.Fatalf("Game %d: expected %d rounds, got %d", i, len(want.Rounds), len(got.Rounds))
		}
		for j := range want.Rounds {
			wr, gr := want.Rounds[j], got.Rounds[j]
			if gr.ID != wr.ID {
				t.Errorf("Game %d round %d: id %s, want %s", i, j, gr.ID, wr.ID)
			}
			if !maps.Equal(gr.Scores, wr.Scores) {
				t.Errorf("Game %d round %d: scores %v, want %v", i, j, gr.Scores, wr.Scores)
			}
			if !maps.Equal(gr.ValueMap, wr.ValueMap) {
				t.Errorf("Game %d round %d: value map mismatch", i, j)
			}
			if !gr.CreatedAt.Equal(wr.CreatedAt) {
				t.Errorf("Game %d round %d: createdAt %v, want %v", i, j, gr.CreatedAt, wr.CreatedAt)
			}
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	snapshots := NewSnapshotStore(openTestDB(t), "sqlite")

	if err := snapshots.Save(testGames()); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := snapshots.Save(testGames()[:1]); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected latest snapshot with 1 game, got %d", len(loaded))
	}
}

func TestLoadColdStart(t *testing.T) {
	snapshots := NewSnapshotStore(openTestDB(t), "sqlite")

	loaded, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Load on empty table should not error: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected no games, got %d", len(loaded))
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	conn := openTestDB(t)
	snapshots := NewSnapshotStore(conn, "sqlite")

	_, err := conn.Exec(`INSERT INTO store_snapshot (key, payload, updated_at) VALUES (?, ?, ?)`,
		SnapshotKey, "{not json", time.Now())
	if err != nil {
		t.Fatalf("Failed to insert garbage: %v", err)
	}

	loaded, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Malformed payload should be a cold start, not an error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected no games, got %d", len(loaded))
	}
}

func TestLoadVersionMismatch(t *testing.T) {
	conn := openTestDB(t)
	snapshots := NewSnapshotStore(conn, "sqlite")

	payload, _ := json.Marshal(snapshotEnvelope{
		Version: SnapshotVersion + 1,
		State:   models.StoreState{Games: testGames()},
	})
	_, err := conn.Exec(`INSERT INTO store_snapshot (key, payload, updated_at) VALUES (?, ?, ?)`,
		SnapshotKey, string(payload), time.Now())
	if err != nil {
		t.Fatalf("Failed to insert payload: %v", err)
	}

	loaded, err := snapshots.Load()
	if err != nil {
		t.Fatalf("Version mismatch should be a cold start, not an error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected no games on version mismatch, got %d", len(loaded))
	}
}

func TestRebind(t *testing.T) {
	sqlite := NewSnapshotStore(nil, "sqlite")
	if got := sqlite.rebind("SELECT ? WHERE a = ?"); got != "SELECT ? WHERE a = ?" {
		t.Errorf("sqlite rebind should be a no-op, got %q", got)
	}

	pg := NewSnapshotStore(nil, "postgres")
	if got := pg.rebind("SELECT ? WHERE a = ?"); got != "SELECT $1 WHERE a = $2" {
		t.Errorf("postgres rebind wrong: %q", got)
	}
}
