// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ids generates globally unique string identifiers for games,
// players, rounds, and requests. An optional prefix namespaces the id so
// log lines and persisted records stay greppable by record kind.
package ids

import "github.com/google/uuid"

// New returns a fresh unique identifier. With a non-empty prefix the id
// is "<prefix>-<uuid>", otherwise just the uuid.
func New(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
