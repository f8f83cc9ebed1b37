// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tellerbot/teller/models"
	"github.com/tellerbot/teller/vote"
)

// Store persists participants, admins, and the gating channel reference.
// All mutations are single SQL statements, so concurrent operations on
// distinct participants never contend on anything but the database itself.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// RegisterParticipant inserts a new participant with a zero tally.
// Registration is idempotent: if the identity already exists the call is
// a no-op and reports created=false, never touching the existing row.
func (s *Store) RegisterParticipant(ctx context.Context, id int64, handle, displayName string) (bool, error) {
	handle = strings.TrimSpace(handle)
	displayName = strings.TrimSpace(displayName)
	if handle == "" {
		return false, fmt.Errorf("%w: handle is required", vote.ErrInvalidArgument)
	}
	if displayName == "" {
		return false, fmt.Errorf("%w: display name is required", vote.ErrInvalidArgument)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO participant (user_id, handle, display_name, vote_count, registered_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, id, handle, displayName, time.Now().UnixMilli())
	if err != nil {
		return false, fmt.Errorf("register participant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("register participant: %w", err)
	}

	return rows == 1, nil
}

// IncrementVote atomically adds one to the participant's tally and returns
// the post-increment value. The increment happens inside a single UPDATE,
// so concurrent calls on the same identity serialize at the database and
// none are lost.
func (s *Store) IncrementVote(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		UPDATE participant
		SET vote_count = vote_count + 1
		WHERE user_id = $1
		RETURNING vote_count
	`, id).Scan(&count)

	if err == sql.ErrNoRows {
		return 0, vote.ErrParticipantNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment vote: %w", err)
	}

	return count, nil
}

// SetVote overwrites the participant's tally with an absolute value.
// This is a point-in-time write: increments that interleave with it are
// intentionally overwritten (last writer wins).
func (s *Store) SetVote(ctx context.Context, id int64, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: vote count must be non-negative", vote.ErrInvalidArgument)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE participant SET vote_count = $1 WHERE user_id = $2
	`, value, id)
	if err != nil {
		return fmt.Errorf("set vote: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set vote: %w", err)
	}
	if rows == 0 {
		return vote.ErrParticipantNotFound
	}

	return nil
}

// GetVote returns the participant's current tally.
func (s *Store) GetVote(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT vote_count FROM participant WHERE user_id = $1
	`, id).Scan(&count)

	if err == sql.ErrNoRows {
		return 0, vote.ErrParticipantNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get vote: %w", err)
	}

	return count, nil
}

// GetParticipant returns the full participant record.
func (s *Store) GetParticipant(ctx context.Context, id int64) (models.Participant, error) {
	var p models.Participant
	var registeredAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, handle, display_name, vote_count, registered_at
		FROM participant WHERE user_id = $1
	`, id).Scan(&p.ID, &p.Handle, &p.DisplayName, &p.VoteCount, &registeredAt)

	if err == sql.ErrNoRows {
		return models.Participant{}, vote.ErrParticipantNotFound
	}
	if err != nil {
		return models.Participant{}, fmt.Errorf("get participant: %w", err)
	}

	p.RegisteredAt = time.UnixMilli(registeredAt).UTC()
	return p, nil
}

// FindByHandle resolves a handle to a participant identity. Handles are
// not unique; when several participants share one, the most recently
// registered wins (ties broken by highest user id) so resolution is
// deterministic.
func (s *Store) FindByHandle(ctx context.Context, handle string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id FROM participant
		WHERE handle = $1
		ORDER BY registered_at DESC, user_id DESC
		LIMIT 1
	`, handle).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, vote.ErrParticipantNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find by handle: %w", err)
	}

	return id, nil
}

// ListParticipants returns all participants ordered by tally, highest
// first, then by registration time for a stable leaderboard.
func (s *Store) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, handle, display_name, vote_count, registered_at
		FROM participant
		ORDER BY vote_count DESC, registered_at ASC, user_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var registeredAt int64
		if err := rows.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.VoteCount, &registeredAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.RegisteredAt = time.UnixMilli(registeredAt).UTC()
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	return participants, nil
}
