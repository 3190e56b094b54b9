// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler and logs request start and completion with a
per-request UUID and the elapsed time:

	mux.HandleFunc("POST /api/vote", middleware.WithLogging(h.Cast))

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON encoding so
handlers stay focused on business rules.

# CORS

CORS wraps the whole mux and reflects the request origin, handling OPTIONS
preflight inline.

# Client IP Resolution

ClientIP derives the voter identity string from the request, in strict
precedence order:

 1. CF-Connecting-IP, if present and non-empty
 2. the first comma-separated entry of X-Forwarded-For, trimmed
 3. the transport peer address, port stripped

The headers are trusted as-is; spoofing protection is delegated to the
proxy layer in front of the service.
*/
package middleware
