// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - participant: one row per registered participant, keyed by platform
    user id, holding handle, display name, and the vote tally
  - admin: identities allowed to override tallies
  - channel: the single gating channel reference (CHECK (id = 1) keeps
    the table at most one row)

Timestamps are stored as unix milliseconds so the same schema works on
both drivers.
*/
package db
