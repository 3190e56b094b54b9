// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/city-vote/cliparse"
	"github.com/danielhkuo/city-vote/middleware"
	"github.com/danielhkuo/city-vote/router"
	"github.com/danielhkuo/city-vote/store"
)

func main() {
	// Load .env if present; real env vars take precedence
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded configuration from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the document store (seeds defaults on first boot)
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Document store ready", "dir", st.Dir())

	// Create router
	mux := router.NewRouter(st, cfg)

	// Pick a port: explicit config wins, otherwise probe the preferred list
	port := cfg.Port
	if port == 0 {
		port = pickPort(cliparse.PreferredPorts)
	}

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// pickPort returns the first free port from the list, or the last entry if
// all are busy (ListenAndServe then reports the real error).
func pickPort(ports []int) int {
	for _, p := range ports {
		l, err := net.Listen("tcp", ":"+strconv.Itoa(p))
		if err != nil {
			slog.Warn("Port busy, trying next", "port", p)
			continue
		}
		l.Close()
		return p
	}
	return ports[len(ports)-1]
}
