// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package eligibility decides whether a voter may cast a vote.

The gate reads the configured gating channel and asks the membership
oracle for the voter's status there. Membership statuses "member",
"administrator", and "creator" allow voting; anything else denies.

The oracle call is bounded by the configured timeout; a timeout or
transport failure is a denial (vote.ErrOracleUnavailable), never a
crash, and the underlying error stays in the chain for the caller to
report. The gate never writes, so a denied request can simply be
retried.
*/
package eligibility
