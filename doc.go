// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the card-counter API server.

Card-counter is a mobile-friendly card-game score tracker: create games
with named players and a card-value mapping, record per-round scores
(optionally assisted by AI card recognition from a photo), and follow
running totals.

# Starting the Server

The server requires environment variables or CLI flags for
configuration (a .env file in the working directory is honored):

	SESSION_SECRET=... APP_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 4170 -d cards.db --password hunter2 --session-secret s3cret

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): secret for session token signing
  - APP_PASSWORD (--password): the shared login password

Optional settings:

  - PORT (-p): server port (default: 4170)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string or sqlite file path
  - RECOGNIZER_URL / RECOGNIZER_API_KEY: card recognition service
  - PRESETS_PATH (--presets): TOML file with extra value-map presets

# Architecture

The server uses a handler-based architecture with dependency injection:

  - gamestore: the state store owning all game/round/score data
  - db: versioned single-record snapshot persistence
  - handlers: HTTP request handlers (session, games, rounds, scan)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, session guard, JSON helpers
  - models: domain and request/response types
  - auth: shared-password session tokens
  - recognizer: external card-recognition client
  - ids: unique identifier generation
  - cliparse: configuration parsing

At startup the persisted snapshot is loaded and the store hydrated
before the server accepts traffic, so reads never see a half-loaded
store.

See package documentation for each component.
*/
package main
