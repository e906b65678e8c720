// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gamestore

import (
	"strings"

	"github.com/andrew-x/card-counter/ids"
	"github.com/andrew-x/card-counter/models"
)

// RebuildRoster resolves an edited list of player names against a game's
// existing roster and returns the replacement players plus the totals
// that go with them. A name that exactly matches an existing player's
// trimmed name keeps that player's id and running total; any other name
// becomes a brand-new player with a zero total. Blank names are dropped.
//
// Matching is by name, not id: renaming a player therefore creates a new
// player record and the old total is dropped with the old roster entry.
// That is the product's established behavior, surprising as it is, and
// changing it here would silently rewrite history for existing games.
func RebuildRoster(game *models.Game, names []string) ([]models.Player, map[string]int) {
	existing := make(map[string]models.Player, len(game.Players))
	for _, p := range game.Players {
		existing[p.Name] = p
	}

	players := make([]models.Player, 0, len(names))
	totals := make(map[string]int, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		player, ok := existing[trimmed]
		if !ok {
			player = models.Player{ID: ids.New("player"), Name: trimmed}
		}
		players = append(players, player)
		totals[player.ID] = game.Totals[player.ID]
	}
	return players, totals
}

// FindRound returns the game's round with the given id, or nil. The
// returned round is part of an immutable snapshot and must not be
// modified.
func FindRound(game *models.Game, roundID string) *models.Round {
	for i := range game.Rounds {
		if game.Rounds[i].ID == roundID {
			return &game.Rounds[i]
		}
	}
	return nil
}

// RecomputeTotals derives totals from scratch as the sum of every
// round's scores, with the current roster present at zero. The store
// maintains totals incrementally; this full rescan must always agree
// with the incremental result and exists for verification.
func RecomputeTotals(game *models.Game) map[string]int {
	totals := make(map[string]int, len(game.Players))
	for _, p := range game.Players {
		totals[p.ID] = 0
	}
	for _, round := range game.Rounds {
		for playerID, score := range round.Scores {
			totals[playerID] += score
		}
	}
	return totals
}
