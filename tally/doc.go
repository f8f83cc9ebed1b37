// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally orchestrates vote casting and admin overrides.

CastVote runs the eligibility gate, then applies a single atomic
increment; a denial leaves the tally untouched. OverrideVote checks the
caller against the admin set, resolves the target by handle, and writes
an absolute value, bypassing the gate.

An override racing a concurrent increment is an accepted last-writer-
wins race: the override is defined as an authoritative point-in-time
correction, not a delta.
*/
package tally
