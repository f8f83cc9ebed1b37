// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"errors"
	"testing"

	"github.com/tellerbot/teller/vote"
)

type fakeParticipants struct {
	counts     map[int64]int
	byHandle   map[string]int64
	increments int
	sets       int
}

func newFakeParticipants() *fakeParticipants {
	return &fakeParticipants{
		counts:   make(map[int64]int),
		byHandle: make(map[string]int64),
	}
}

func (f *fakeParticipants) IncrementVote(ctx context.Context, id int64) (int, error) {
	if _, ok := f.counts[id]; !ok {
		return 0, vote.ErrParticipantNotFound
	}
	f.increments++
	f.counts[id]++
	return f.counts[id], nil
}

func (f *fakeParticipants) SetVote(ctx context.Context, id int64, value int) error {
	if _, ok := f.counts[id]; !ok {
		return vote.ErrParticipantNotFound
	}
	if value < 0 {
		return vote.ErrInvalidArgument
	}
	f.sets++
	f.counts[id] = value
	return nil
}

func (f *fakeParticipants) FindByHandle(ctx context.Context, handle string) (int64, error) {
	id, ok := f.byHandle[handle]
	if !ok {
		return 0, vote.ErrParticipantNotFound
	}
	return id, nil
}

type fakeAdmins map[int64]bool

func (f fakeAdmins) IsAdmin(ctx context.Context, id int64) (bool, error) {
	return f[id], nil
}

type gateFunc func(ctx context.Context, voterID int64) error

func (f gateFunc) Check(ctx context.Context, voterID int64) error {
	return f(ctx, voterID)
}

func allowAll() gateFunc {
	return func(ctx context.Context, voterID int64) error { return nil }
}

func denyWith(err error) gateFunc {
	return func(ctx context.Context, voterID int64) error { return err }
}

func TestCastVote(t *testing.T) {
	participants := newFakeParticipants()
	participants.counts[42] = 0
	engine := &Engine{Participants: participants, Admins: fakeAdmins{}, Gate: allowAll()}

	count, err := engine.CastVote(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CastVote() = %d, want 1", count)
	}

	// No dedup: the same voter can vote again
	count, err = engine.CastVote(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("second CastVote() error = %v", err)
	}
	if count != 2 {
		t.Errorf("second CastVote() = %d, want 2", count)
	}
}

func TestCastVote_DenialWritesNothing(t *testing.T) {
	denials := []error{
		vote.ErrChannelNotConfigured,
		vote.ErrNotAMember,
		vote.ErrOracleUnavailable,
	}

	for _, denial := range denials {
		t.Run(denial.Error(), func(t *testing.T) {
			participants := newFakeParticipants()
			participants.counts[42] = 5
			engine := &Engine{Participants: participants, Admins: fakeAdmins{}, Gate: denyWith(denial)}

			_, err := engine.CastVote(context.Background(), 42, 7)
			if !errors.Is(err, denial) {
				t.Errorf("CastVote() error = %v, want %v", err, denial)
			}
			if participants.increments != 0 {
				t.Errorf("denied vote performed %d increments, want 0", participants.increments)
			}
			if participants.counts[42] != 5 {
				t.Errorf("denied vote changed count to %d, want 5", participants.counts[42])
			}
		})
	}
}

func TestCastVote_TargetNotRegistered(t *testing.T) {
	engine := &Engine{Participants: newFakeParticipants(), Admins: fakeAdmins{}, Gate: allowAll()}

	_, err := engine.CastVote(context.Background(), 999, 7)
	if !errors.Is(err, vote.ErrParticipantNotFound) {
		t.Errorf("CastVote() error = %v, want ErrParticipantNotFound", err)
	}
}

func TestOverrideVote(t *testing.T) {
	participants := newFakeParticipants()
	participants.counts[42] = 5
	participants.byHandle["alice"] = 42
	engine := &Engine{Participants: participants, Admins: fakeAdmins{1: true}, Gate: denyWith(vote.ErrNotAMember)}

	// The gate is bypassed: a denying gate must not block an override
	targetID, err := engine.OverrideVote(context.Background(), 1, "alice", 50)
	if err != nil {
		t.Fatalf("OverrideVote() error = %v", err)
	}
	if targetID != 42 {
		t.Errorf("OverrideVote() resolved target = %d, want 42", targetID)
	}
	if participants.counts[42] != 50 {
		t.Errorf("count after override = %d, want 50 (absolute, not delta)", participants.counts[42])
	}
}

func TestOverrideVote_Unauthorized(t *testing.T) {
	participants := newFakeParticipants()
	participants.counts[42] = 5
	participants.byHandle["alice"] = 42
	engine := &Engine{Participants: participants, Admins: fakeAdmins{}, Gate: allowAll()}

	_, err := engine.OverrideVote(context.Background(), 9, "alice", 0)
	if !errors.Is(err, vote.ErrUnauthorized) {
		t.Errorf("OverrideVote() error = %v, want ErrUnauthorized", err)
	}
	if participants.sets != 0 {
		t.Errorf("unauthorized override performed %d writes, want 0", participants.sets)
	}
	if participants.counts[42] != 5 {
		t.Errorf("unauthorized override changed count to %d, want 5", participants.counts[42])
	}
}

func TestOverrideVote_NegativeValue(t *testing.T) {
	participants := newFakeParticipants()
	participants.counts[42] = 5
	participants.byHandle["alice"] = 42
	engine := &Engine{Participants: participants, Admins: fakeAdmins{1: true}, Gate: allowAll()}

	_, err := engine.OverrideVote(context.Background(), 1, "alice", -3)
	if !errors.Is(err, vote.ErrInvalidArgument) {
		t.Errorf("OverrideVote(-3) error = %v, want ErrInvalidArgument", err)
	}
	if participants.sets != 0 {
		t.Errorf("invalid override performed %d writes, want 0", participants.sets)
	}
}

func TestOverrideVote_UnknownHandle(t *testing.T) {
	engine := &Engine{Participants: newFakeParticipants(), Admins: fakeAdmins{1: true}, Gate: allowAll()}

	_, err := engine.OverrideVote(context.Background(), 1, "nobody", 5)
	if !errors.Is(err, vote.ErrParticipantNotFound) {
		t.Errorf("OverrideVote(unknown handle) error = %v, want ErrParticipantNotFound", err)
	}
}
