// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method routing on the standard ServeMux. /login,
/logout, and /health are public; everything else sits behind the
session-cookie guard plus request logging.
*/
package router
