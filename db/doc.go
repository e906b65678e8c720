// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the game store as a single durable record.

The whole store serializes to one versioned JSON envelope under the key
"game-store":

	{
	  "version": 1,
	  "state": {
	    "games": [ { "id": ..., "players": [...], "rounds": [...], ... } ]
	  }
	}

Writes are write-through (one upsert per store mutation); human input
rate makes batching pointless. Loads happen once at startup. An absent,
malformed, or version-mismatched payload is a cold start: the store
begins empty and the condition is logged, never surfaced as an error.

Two backends share the schema: sqlite (modernc.org/sqlite, the default,
a local file) and postgres (lib/pq). The driver name chooses the
placeholder style at query time.
*/
package db
