// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the admin gate: password verification for login and
shared-token checks for privileged requests.

# Login

The admin password is never stored. The configured reference is its SHA-256
hex digest, and login compares digests in constant time:

	if err := auth.VerifyPassword(req.Password, cfg.AdminPasswordHash); err != nil {
		// unauthorized
	}

On success the handler returns the static shared admin token.

# Authorization

Every privileged operation requires the X-Admin-Token header to equal the
configured shared secret:

	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), cfg.AdminToken); err != nil {
		// unauthorized
	}

There is no session store, no expiry, and no per-admin credentials: this is
a single shared-secret capability, kept behind this package so it could be
swapped for real credentials without touching the voting core.
*/
package auth
