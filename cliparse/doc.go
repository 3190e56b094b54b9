// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback.

# Settings

Required (flag / env):

  - -admin-hash / ADMIN_HASH: SHA-256 hex digest of the admin password
  - -admin-token / ADMIN_TOKEN: static shared admin secret

Optional:

  - -p / PORT: server port; when 0, main probes PreferredPorts in order
  - -data / DATA_DIR: data directory for the JSON tables (default "data")
  - -static / STATIC_DIR: static frontend directory to serve at /

CLI flags override environment variables. A .env file, if present, is
loaded by main before parsing.
*/
package cliparse
