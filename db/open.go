// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and verifies the connection.
// databaseType selects the driver: "sqlite" (default deployment) or
// "postgres". For sqlite the DSN enables WAL and a busy timeout so
// concurrent writers queue instead of failing immediately.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	var driver, dsn string

	switch databaseType {
	case "sqlite":
		driver = "sqlite"
		dsn = databaseURL + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	case "postgres":
		driver = "postgres"
		dsn = databaseURL
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", databaseType, err)
	}

	if databaseType == "sqlite" {
		// sqlite allows one writer per file; capping the pool makes
		// concurrent writers queue in-process instead of seeing BUSY
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", databaseType, err)
	}

	return conn, nil
}
