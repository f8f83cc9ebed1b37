// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The SQL below sticks to the dialect both drivers share: no NOW()
// defaults (timestamps are written from Go as unix millis), BIGINT ids,
// and single-row enforcement on channel via CHECK (id = 1).
const schema = `
-- Participants
CREATE TABLE IF NOT EXISTS participant (
    user_id BIGINT PRIMARY KEY,
    handle TEXT NOT NULL,
    display_name TEXT NOT NULL,
    vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
    registered_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participant_handle ON participant(handle);
CREATE INDEX IF NOT EXISTS idx_participant_vote_count ON participant(vote_count);

-- Admins
CREATE TABLE IF NOT EXISTS admin (
    user_id BIGINT PRIMARY KEY,
    handle TEXT NOT NULL
);

-- Gating channel (singleton row)
CREATE TABLE IF NOT EXISTS channel (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    channel_id BIGINT NOT NULL
);
`
