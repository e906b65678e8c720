// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/andrew-x/card-counter/gamestore"
	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/models"
)

type RoundHandler struct {
	store *gamestore.Store
}

func NewRoundHandler(store *gamestore.Store) *RoundHandler {
	return &RoundHandler{store: store}
}

// AddRound handles POST /games/:id/rounds
//
// Scores are raw per-player round values, keyed by player id. Players
// missing from the map simply score zero for the round. Negative values
// are allowed; plenty of card games hand out penalties.
func (h *RoundHandler) AddRound(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	var req models.RoundScoresRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Scores == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scores is required")
		return
	}

	round := h.store.AddRound(gameID, req.Scores)
	if round == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}

	slog.Info("round added", "game_id", gameID, "round_id", round.ID)
	middleware.JSONResponse(w, http.StatusCreated, round)
}

// UpdateRound handles PUT /games/:id/rounds/:roundId
//
// The scores map replaces the round's previous scores wholesale; the
// store adjusts totals by the delta between the two.
func (h *RoundHandler) UpdateRound(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	roundID := r.PathValue("roundId")

	var req models.RoundScoresRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Scores == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scores is required")
		return
	}

	if !h.roundExists(gameID, roundID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
		return
	}

	h.store.UpdateRound(gameID, roundID, req.Scores)

	game, _ := h.store.GetGame(gameID)
	slog.Info("round updated", "game_id", gameID, "round_id", roundID)
	middleware.JSONResponse(w, http.StatusOK, game)
}

// DeleteRound handles DELETE /games/:id/rounds/:roundId
func (h *RoundHandler) DeleteRound(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	roundID := r.PathValue("roundId")

	if !h.roundExists(gameID, roundID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
		return
	}

	h.store.DeleteRound(gameID, roundID)

	slog.Info("round deleted", "game_id", gameID, "round_id", roundID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *RoundHandler) roundExists(gameID, roundID string) bool {
	game, ok := h.store.GetGame(gameID)
	if !ok {
		return false
	}
	return gamestore.FindRound(game, roundID) != nil
}
