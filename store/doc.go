// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the application's three document tables as whole JSON
files under a configured data directory.

# Tables

  - settings.json: singleton Settings document
  - categories.json: sequence of Category
  - votes.json: sequence of Vote

# Semantics

Open seeds missing tables with their defaults, so a fresh data directory is
immediately usable:

	st, err := store.Open("data")

Loads never fail a request: a missing or corrupt backing file logs the error
and yields the table's default (default Settings, empty sequences). Saves
marshal the entire table and atomically replace the backing file via temp
file + rename. There are no partial updates and no merges; the whole document
is the unit of replacement.

# Concurrency

Each table has its own mutex. Vote mutations must go through UpdateVotes,
which holds the votes lock across load, transform, and save so that the
quota check-then-append in vote casting cannot be raced past by concurrent
requests. Settings and categories saves are last-writer-wins whole-document
replaces.

This is deliberately not a database engine. The store is the sole source of
truth, traffic is modest, and writes are infrequent relative to reads.
*/
package store
