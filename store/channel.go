// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tellerbot/teller/vote"
)

// SetChannel replaces the gating channel reference. The table holds at
// most one row (CHECK (id = 1)), and the upsert is a single statement,
// so readers see either the previous channel or the new one, never both
// and never a torn value. Validation of the channel itself happens
// before this call.
func (s *Store) SetChannel(ctx context.Context, channelID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO channel (id, channel_id)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET channel_id = excluded.channel_id
	`, channelID)
	if err != nil {
		return fmt.Errorf("set channel: %w", err)
	}

	return nil
}

// GetChannel returns the configured gating channel, or
// vote.ErrChannelNotConfigured if none has been set.
func (s *Store) GetChannel(ctx context.Context) (int64, error) {
	var channelID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT channel_id FROM channel WHERE id = 1
	`).Scan(&channelID)

	if err == sql.ErrNoRows {
		return 0, vote.ErrChannelNotConfigured
	}
	if err != nil {
		return 0, fmt.Errorf("get channel: %w", err)
	}

	return channelID, nil
}
