// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/tellerbot/teller/cliparse"
	"github.com/tellerbot/teller/eligibility"
	"github.com/tellerbot/teller/handlers"
	"github.com/tellerbot/teller/middleware"
	"github.com/tellerbot/teller/store"
	"github.com/tellerbot/teller/tally"
	"github.com/tellerbot/teller/telegram"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire the core: store -> gate -> engine
	st := store.New(db)
	bot := telegram.New(cfg.BotToken, cfg.OracleTimeout)
	gate := eligibility.New(st, bot, cfg.OracleTimeout)
	engine := &tally.Engine{Participants: st, Admins: st, Gate: gate}

	participantHandler := handlers.NewParticipantHandler(st)
	voteHandler := handlers.NewVoteHandler(engine)
	channelHandler := handlers.NewChannelHandler(st, bot)

	// Every transport-facing route carries logging; state-changing ones
	// additionally require the shared transport key.
	keyed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireTransportKey(cfg.TransportKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participant registration and reads
	mux.HandleFunc("POST /participants", keyed(participantHandler.Register))
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantHandler.List))
	mux.HandleFunc("GET /participants/{id}", middleware.WithLogging(participantHandler.Get))

	// Voting operations
	mux.HandleFunc("POST /votes", keyed(voteHandler.CastVote))
	mux.HandleFunc("POST /overrides", keyed(voteHandler.Override))

	// Gating channel configuration
	mux.HandleFunc("PUT /channel", keyed(channelHandler.Set))
	mux.HandleFunc("GET /channel", middleware.WithLogging(channelHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("teller API v1"))
	})

	return mux
}
