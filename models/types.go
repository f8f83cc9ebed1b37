package models

import "time"

// Membership statuses reported by the oracle that permit voting
const (
	StatusMember        = "member"
	StatusAdministrator = "administrator"
	StatusCreator       = "creator"
)

// Request types

type RegisterParticipantRequest struct {
	UserID      int64  `json:"user_id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

type CastVoteRequest struct {
	TargetID int64 `json:"target_id"`
	VoterID  int64 `json:"voter_id"`
}

type OverrideVoteRequest struct {
	CallerID     int64  `json:"caller_id"`
	TargetHandle string `json:"target_handle"`
	VoteCount    int    `json:"vote_count"`
}

type SetChannelRequest struct {
	ChannelID int64 `json:"channel_id"`
}

// Response types

type RegisterParticipantResponse struct {
	Created bool `json:"created"`
}

type CastVoteResponse struct {
	TargetID  int64 `json:"target_id"`
	VoteCount int   `json:"vote_count"`
}

type OverrideVoteResponse struct {
	TargetID  int64 `json:"target_id"`
	VoteCount int   `json:"vote_count"`
}

type ChannelResponse struct {
	ChannelID int64 `json:"channel_id"`
}

// Domain types

type Participant struct {
	ID           int64     `json:"id"`
	Handle       string    `json:"handle"`
	DisplayName  string    `json:"display_name"`
	VoteCount    int       `json:"vote_count"`
	RegisteredAt time.Time `json:"registered_at"`
}

type Admin struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
