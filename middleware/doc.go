// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request start/completion logging via slog
  - RequireSession: session-cookie guard for authenticated routes
  - CORS: cross-origin headers and preflight handling
  - JSONResponse / ErrorResponse: response encoding
  - ParseJSONBody: request decoding
  - GetClientIP: client address behind proxies
*/
package middleware
