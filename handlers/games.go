// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/andrew-x/card-counter/cliparse"
	"github.com/andrew-x/card-counter/gamestore"
	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/models"
)

type GameHandler struct {
	store *gamestore.Store
	cfg   cliparse.Config
}

func NewGameHandler(store *gamestore.Store, cfg cliparse.Config) *GameHandler {
	return &GameHandler{store: store, cfg: cfg}
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	players := make([]models.Player, 0, len(req.Players))
	for _, name := range req.Players {
		if strings.TrimSpace(name) == "" {
			continue
		}
		players = append(players, models.Player{Name: name})
	}
	if len(players) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one player is required")
		return
	}

	valueMap := req.ValueMap
	if valueMap == nil {
		valueMap = models.DefaultValueMap()
	}

	game := h.store.CreateGame(strings.TrimSpace(req.Title), players, valueMap)

	slog.Info("game created", "game_id", game.ID, "title", game.Title, "players", len(game.Players))
	middleware.JSONResponse(w, http.StatusCreated, game)
}

// ListGames handles GET /games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	if !h.store.HasHydrated() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Store is still loading")
		return
	}

	games := h.store.Games()
	if games == nil {
		games = []*models.Game{}
	}
	middleware.JSONResponse(w, http.StatusOK, games)
}

// GetGame handles GET /games/:id
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	if !h.store.HasHydrated() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Store is still loading")
		return
	}

	game, ok := h.store.GetGame(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, game)
}

// UpdateGame handles PATCH /games/:id
//
// Roster edits replace the player list wholesale: names that match an
// existing player keep that player and their total, anything else is a
// new player starting at zero.
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	var req models.UpdateGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	game, ok := h.store.GetGame(gameID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Game not found")
		return
	}

	var upd gamestore.GameUpdate
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "title cannot be blank")
			return
		}
		upd.Title = &title
	}
	if req.ValueMap != nil {
		upd.ValueMap = req.ValueMap
	}
	if req.Players != nil {
		players, totals := gamestore.RebuildRoster(game, req.Players)
		if len(players) == 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "at least one player is required")
			return
		}
		upd.Players = players
		upd.Totals = totals
	}

	h.store.UpdateGame(gameID, upd)

	updated, _ := h.store.GetGame(gameID)
	slog.Info("game updated", "game_id", gameID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// DeleteGame handles DELETE /games/:id
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	h.store.DeleteGame(gameID)

	slog.Info("game deleted", "game_id", gameID)
	w.WriteHeader(http.StatusNoContent)
}

// ClearAllGames handles DELETE /games
// Confirmation happens in the UI; this always wipes everything.
func (h *GameHandler) ClearAllGames(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAllGames()

	slog.Info("all games cleared")
	w.WriteHeader(http.StatusNoContent)
}

// GetPresets handles GET /presets
func (h *GameHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PresetsResponse{Presets: h.cfg.Presets})
}
