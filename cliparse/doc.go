// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables. A .env file in the working directory is loaded
first, so local development needs no exported shell state.

Required settings:

  - SESSION_SECRET (--session-secret): secret for signing session tokens
  - APP_PASSWORD (--password): the shared login password

Optional settings:

  - PORT (-p): server port (default: 4170)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string; for sqlite, a file path
    (default: card-counter.db)
  - RECOGNIZER_URL (--recognizer-url): card recognition service; the
    scan endpoint is disabled when unset
  - RECOGNIZER_API_KEY (--recognizer-key)
  - PRESETS_PATH (--presets): TOML file with extra value-map presets

Flags win over environment variables.
*/
package cliparse
