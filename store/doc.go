// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the durable state of the tally core: participant
records, the admin set, and the singleton gating-channel reference.

# Participants

One row per platform identity. Registration is idempotent
(ON CONFLICT DO NOTHING) and never overwrites an existing tally.
IncrementVote is a single UPDATE ... RETURNING, which makes concurrent
increments on the same participant linearizable without any read-modify-
write window. SetVote is the admin override path: an absolute write that
deliberately wins over interleaved increments.

Handles are not unique. FindByHandle resolves duplicates to the most
recently registered participant; if one-vote-per-voter dedup is ever
wanted, the extension point is a (target_id, voter_id) unique table
consulted before IncrementVote.

# Admins

A flat identity set consulted by the override path. Populated at startup
via SeedAdmins; there is no self-service admin registration.

# Channel

At most one gating channel is in force at a time. SetChannel replaces the
reference atomically with an upsert against a CHECK (id = 1) table.

All operations take a context and work identically on the sqlite and
postgres drivers wired in package db.
*/
package store
