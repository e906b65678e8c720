// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/andrew-x/card-counter/cliparse"
	"github.com/andrew-x/card-counter/gamestore"
	"github.com/andrew-x/card-counter/handlers"
	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/recognizer"
)

func NewRouter(store *gamestore.Store, rec recognizer.Recognizer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(cfg)
	gameHandler := handlers.NewGameHandler(store, cfg)
	roundHandler := handlers.NewRoundHandler(store)
	scanHandler := handlers.NewScanHandler(rec)

	secured := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Games
	mux.HandleFunc("POST /games", secured(gameHandler.CreateGame))
	mux.HandleFunc("GET /games", secured(gameHandler.ListGames))
	mux.HandleFunc("GET /games/{id}", secured(gameHandler.GetGame))
	mux.HandleFunc("PATCH /games/{id}", secured(gameHandler.UpdateGame))
	mux.HandleFunc("DELETE /games/{id}", secured(gameHandler.DeleteGame))
	mux.HandleFunc("DELETE /games", secured(gameHandler.ClearAllGames))

	// Rounds
	mux.HandleFunc("POST /games/{id}/rounds", secured(roundHandler.AddRound))
	mux.HandleFunc("PUT /games/{id}/rounds/{roundId}", secured(roundHandler.UpdateRound))
	mux.HandleFunc("DELETE /games/{id}/rounds/{roundId}", secured(roundHandler.DeleteRound))

	// Presets and scanning
	mux.HandleFunc("GET /presets", secured(gameHandler.GetPresets))
	mux.HandleFunc("POST /scan", secured(scanHandler.Scan))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("card-counter API v1"))
	})

	return mux
}
