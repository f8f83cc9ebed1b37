// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eligibility

import (
	"context"
	"fmt"
	"time"

	"github.com/tellerbot/teller/models"
	"github.com/tellerbot/teller/vote"
)

// ChannelSource supplies the currently configured gating channel.
type ChannelSource interface {
	GetChannel(ctx context.Context) (int64, error)
}

// MembershipOracle reports a user's status in a channel. It is assumed
// to be network-bound and fallible.
type MembershipOracle interface {
	GetMembershipStatus(ctx context.Context, channelID, userID int64) (string, error)
}

// Gate decides whether a voter may cast a vote right now. It performs no
// writes; aside from the oracle call it is a pure decision function and
// is safe to retry.
type Gate struct {
	channels ChannelSource
	oracle   MembershipOracle
	timeout  time.Duration
}

func New(channels ChannelSource, oracle MembershipOracle, timeout time.Duration) *Gate {
	return &Gate{channels: channels, oracle: oracle, timeout: timeout}
}

// Check returns nil if the voter may vote. Denials are:
//
//   - vote.ErrChannelNotConfigured: no gating channel has been set
//   - vote.ErrOracleUnavailable: the membership check failed or timed
//     out; the cause is wrapped for reporting
//   - vote.ErrNotAMember: the voter's status is outside
//     {member, administrator, creator}
func (g *Gate) Check(ctx context.Context, voterID int64) error {
	channelID, err := g.channels.GetChannel(ctx)
	if err != nil {
		return err
	}

	octx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		octx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	status, err := g.oracle.GetMembershipStatus(octx, channelID, voterID)
	if err != nil {
		return fmt.Errorf("%w: %w", vote.ErrOracleUnavailable, err)
	}

	switch status {
	case models.StatusMember, models.StatusAdministrator, models.StatusCreator:
		return nil
	default:
		return vote.ErrNotAMember
	}
}
