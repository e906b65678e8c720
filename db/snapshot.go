// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-x/card-counter/models"
)

// SnapshotKey is the namespaced key the whole store persists under.
const SnapshotKey = "game-store"

// SnapshotVersion is the payload version this build reads and writes.
// A persisted payload with any other version is treated as absent.
const SnapshotVersion = 1

// snapshotEnvelope is the durable record layout: a version tag wrapping
// the store state. Dates serialize as ISO-8601 strings via time.Time.
type snapshotEnvelope struct {
	Version int               `json:"version"`
	State   models.StoreState `json:"state"`
}

// SnapshotStore saves and loads the store's single snapshot record.
// driver is the database/sql driver name ("sqlite" or "postgres") and
// selects the placeholder style.
type SnapshotStore struct {
	db     *sql.DB
	driver string
}

func NewSnapshotStore(db *sql.DB, driver string) *SnapshotStore {
	return &SnapshotStore{db: db, driver: driver}
}

// Save writes the full game collection under SnapshotKey, replacing any
// previous record. Implements gamestore.Persister.
func (s *SnapshotStore) Save(games []*models.Game) error {
	payload, err := json.Marshal(snapshotEnvelope{
		Version: SnapshotVersion,
		State:   models.StoreState{Games: games},
	})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.Exec(s.rebind(`
		INSERT INTO store_snapshot (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`), SnapshotKey, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. A missing record, malformed
// payload, or version mismatch is a cold start, not a fault: Load
// returns an empty collection and only logs the reason. Real database
// errors are returned.
func (s *SnapshotStore) Load() ([]*models.Game, error) {
	var payload string
	err := s.db.QueryRow(s.rebind(`
		SELECT payload FROM store_snapshot WHERE key = ?
	`), SnapshotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		slog.Warn("persisted snapshot malformed, starting empty", "error", err)
		return nil, nil
	}
	if envelope.Version != SnapshotVersion {
		slog.Warn("persisted snapshot version mismatch, starting empty",
			"found", envelope.Version,
			"expected", SnapshotVersion,
		)
		return nil, nil
	}

	return envelope.State.Games, nil
}

// rebind rewrites ? placeholders to $1..$n for postgres. Queries are
// written in sqlite form; lib/pq only accepts ordinal placeholders.
func (s *SnapshotStore) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
