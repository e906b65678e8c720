// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface over the game store.

  - SessionHandler: login/logout with the shared password
  - GameHandler: game CRUD, clear-all, value-map presets
  - RoundHandler: round add/update/delete with incremental totals
  - ScanHandler: card recognition pass-through

Handlers translate between HTTP and the store: store mutators treat an
unknown id as a silent no-op, so existence checks for 404s happen here,
before the store call. Validation is shallow (required fields only);
anything structurally valid is the store's business.
*/
package handlers
