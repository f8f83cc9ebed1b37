// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"

	"github.com/tellerbot/teller/vote"
)

// ParticipantStore is the slice of the store the engine mutates.
type ParticipantStore interface {
	IncrementVote(ctx context.Context, id int64) (int, error)
	SetVote(ctx context.Context, id int64, value int) error
	FindByHandle(ctx context.Context, handle string) (int64, error)
}

// AdminDirectory answers override authorization checks.
type AdminDirectory interface {
	IsAdmin(ctx context.Context, id int64) (bool, error)
}

// EligibilityChecker is satisfied by eligibility.Gate.
type EligibilityChecker interface {
	Check(ctx context.Context, voterID int64) error
}

// Engine is the only path by which votes are recorded. It owns no state
// of its own; all durable state lives behind the injected interfaces.
type Engine struct {
	Participants ParticipantStore
	Admins       AdminDirectory
	Gate         EligibilityChecker
}

// CastVote records one vote for the target on behalf of the voter.
// The voter must pass the eligibility gate; on any denial nothing is
// written and the denial is returned as-is. On success exactly one
// increment lands and the new tally is returned.
//
// There is no self-vote restriction and no per-voter dedup: a voter who
// keeps pressing vote keeps incrementing.
func (e *Engine) CastVote(ctx context.Context, targetID, voterID int64) (int, error) {
	if err := e.Gate.Check(ctx, voterID); err != nil {
		return 0, err
	}

	return e.Participants.IncrementVote(ctx, targetID)
}

// OverrideVote sets a participant's tally to an absolute value. Only
// identities in the admin set may call it; the eligibility gate is
// bypassed entirely - this is an administrative correction, not a vote.
// The target is addressed by handle and the resolved identity is
// returned so the caller can report which record changed.
func (e *Engine) OverrideVote(ctx context.Context, callerID int64, targetHandle string, value int) (int64, error) {
	isAdmin, err := e.Admins.IsAdmin(ctx, callerID)
	if err != nil {
		return 0, fmt.Errorf("check admin: %w", err)
	}
	if !isAdmin {
		return 0, vote.ErrUnauthorized
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: vote count must be non-negative", vote.ErrInvalidArgument)
	}

	targetID, err := e.Participants.FindByHandle(ctx, targetHandle)
	if err != nil {
		return 0, err
	}

	if err := e.Participants.SetVote(ctx, targetID, value); err != nil {
		return 0, err
	}

	return targetID, nil
}
