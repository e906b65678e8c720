// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the shared-password session mechanism.

There is one password for the whole deployment and no user accounts.
A successful login mints a 30-day HS256 token whose only claim is
"authenticated": true; the token rides in the card-counter-session
cookie and is checked by the middleware session guard.

	token, err := auth.CreateSessionToken(cfg.SessionSecret)
	err = auth.VerifySessionToken(token, cfg.SessionSecret)

Password comparison is constant-time.
*/
package auth
