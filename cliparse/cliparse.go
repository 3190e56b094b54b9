package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// PreferredPorts is probed in order when no port is configured.
var PreferredPorts = []int{55000, 55001, 55002}

type Config struct {
	Port              int
	DataDir           string
	StaticDir         string
	AdminPasswordHash string
	AdminToken        string
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("city-vote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port (0 = probe preferred ports)")
	fs.StringVar(&cfg.DataDir, "data", "", "Data directory for JSON tables")
	fs.StringVar(&cfg.StaticDir, "static", "", "Optional static frontend directory")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPasswordHash, "admin-hash", "", "SHA-256 hex digest of the admin password (prefer env)")
	fs.StringVar(&cfg.AdminToken, "admin-token", "", "Shared admin token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
		// Port 0 is valid: main probes PreferredPorts
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	// Secrets - MUST be provided
	if cfg.AdminPasswordHash == "" {
		cfg.AdminPasswordHash = os.Getenv("ADMIN_HASH")
	}
	if cfg.AdminPasswordHash == "" {
		return Config{}, errors.New("ADMIN_HASH required (SHA-256 hex digest of the admin password)")
	}

	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	}
	if cfg.AdminToken == "" {
		return Config{}, errors.New("ADMIN_TOKEN required")
	}

	return cfg, nil
}
