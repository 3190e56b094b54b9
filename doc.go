// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the city-vote API server.

city-vote is a small public voting service: visitors cast votes for
participants within categories, an administrator toggles voting state and
edits categories and settings, and aggregated results are revealed once
voting closes.

# Starting the Server

The server reads configuration from environment variables (a .env file is
loaded if present) or CLI flags:

	ADMIN_HASH=... ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 55000 -data data -admin-hash <sha256-hex> -admin-token <secret>

# Configuration

Required settings:

  - ADMIN_HASH (-admin-hash): SHA-256 hex digest of the admin password
  - ADMIN_TOKEN (-admin-token): static shared admin secret

Optional settings:

  - PORT (-p): server port (default: first free of 55000, 55001, 55002)
  - DATA_DIR (-data): directory for the JSON document tables (default: data)
  - STATIC_DIR (-static): static frontend directory served at /

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (voting, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP resolution
  - models: Domain documents and request/response types
  - store: JSON document tables on disk
  - auth: Admin password digest and shared-token checks
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
