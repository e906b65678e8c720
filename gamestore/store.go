// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gamestore

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/andrew-x/card-counter/ids"
	"github.com/andrew-x/card-counter/models"
)

// Persister receives the full game collection after every mutation.
// Saves are best-effort: a failed save is logged and never fails the
// mutation that triggered it.
type Persister interface {
	Save(games []*models.Game) error
}

// Observer is notified with the new snapshot after each mutation.
// Unchanged games keep their pointer across calls, so observers can
// compare by identity to decide what to react to.
type Observer func(games []*models.Game)

// Store owns all game, round, and player records. Games handed out by
// the store are immutable snapshots shared by pointer: a mutation never
// edits a published game in place, it installs a fresh copy of only the
// affected game.
//
// Mutators called with an unknown game or round id are silent no-ops;
// ids are always sourced from current state by the caller, so an unknown
// id is stale input, not an error.
type Store struct {
	mu          sync.RWMutex
	games       []*models.Game
	hasHydrated bool

	persister Persister
	observers []Observer
}

// New creates an empty store. persister may be nil (no write-through).
func New(persister Persister) *Store {
	return &Store{persister: persister}
}

// CreateGame allocates a new game with zeroed totals and no rounds.
// Players without an id get a fresh one; names are trimmed.
func (s *Store) CreateGame(title string, players []models.Player, valueMap models.ValueMap) *models.Game {
	roster := make([]models.Player, 0, len(players))
	totals := make(map[string]int, len(players))
	for _, p := range players {
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == "" {
			p.ID = ids.New("player")
		}
		roster = append(roster, p)
		totals[p.ID] = 0
	}

	game := &models.Game{
		ID:        ids.New("game"),
		Title:     title,
		Players:   roster,
		ValueMap:  valueMap.Clone(),
		Rounds:    []models.Round{},
		Totals:    totals,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.games = append(slices.Clone(s.games), game)
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
	return game
}

// GameUpdate is a partial edit applied to a game. Nil fields are left
// unchanged. Replacing Players does not recompute Totals; callers that
// edit the roster supply the matching Totals themselves (see
// RebuildRoster).
type GameUpdate struct {
	Title    *string
	Players  []models.Player
	ValueMap models.ValueMap
	Rounds   []models.Round
	Totals   map[string]int
}

// UpdateGame applies a shallow merge of upd onto the matching game.
// No-op if the game does not exist.
func (s *Store) UpdateGame(gameID string, upd GameUpdate) {
	s.mu.Lock()
	i := s.indexLocked(gameID)
	if i < 0 {
		s.mu.Unlock()
		return
	}

	game := cloneGame(s.games[i])
	if upd.Title != nil {
		game.Title = *upd.Title
	}
	if upd.Players != nil {
		game.Players = slices.Clone(upd.Players)
	}
	if upd.ValueMap != nil {
		game.ValueMap = upd.ValueMap.Clone()
	}
	if upd.Rounds != nil {
		game.Rounds = slices.Clone(upd.Rounds)
	}
	if upd.Totals != nil {
		game.Totals = cloneTotals(upd.Totals)
	}

	s.games = slices.Clone(s.games)
	s.games[i] = game
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
}

// DeleteGame removes the game. Idempotent: repeat calls are no-ops.
func (s *Store) DeleteGame(gameID string) {
	s.mu.Lock()
	i := s.indexLocked(gameID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.games = slices.Delete(slices.Clone(s.games), i, i+1)
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
}

// GetGame looks up a game by id. Callers that need a definitive answer
// on existence should check HasHydrated first; before hydration the
// store cannot distinguish "not found" from "not loaded yet".
func (s *Store) GetGame(gameID string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(gameID)
	if i < 0 {
		return nil, false
	}
	return s.games[i], true
}

// Games returns the current snapshot of all games in insertion order.
func (s *Store) Games() []*models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.games)
}

// AddRound records a new round for the game. The round snapshots the
// game's current value mapping, and every (player, score) entry is added
// to the game's totals. Returns the created round, or nil if the game
// does not exist.
func (s *Store) AddRound(gameID string, scores map[string]int) *models.Round {
	s.mu.Lock()
	i := s.indexLocked(gameID)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}

	game := cloneGame(s.games[i])
	round := models.Round{
		ID:        ids.New("round"),
		ValueMap:  game.ValueMap.Clone(),
		Scores:    cloneTotals(scores),
		CreatedAt: time.Now(),
	}
	game.Rounds = append(game.Rounds, round)
	for playerID, score := range round.Scores {
		game.Totals[playerID] += score
	}

	s.games = slices.Clone(s.games)
	s.games[i] = game
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
	return &round
}

// UpdateRound replaces the round's scores wholesale and adjusts totals
// by the delta between old and new scores. Exact even when a player
// appears in only one of the two maps. No-op if game or round missing.
func (s *Store) UpdateRound(gameID, roundID string, scores map[string]int) {
	s.mu.Lock()
	i := s.indexLocked(gameID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	j := roundIndex(s.games[i].Rounds, roundID)
	if j < 0 {
		s.mu.Unlock()
		return
	}

	game := cloneGame(s.games[i])
	old := game.Rounds[j].Scores
	for playerID, score := range old {
		game.Totals[playerID] -= score
	}
	for playerID, score := range scores {
		game.Totals[playerID] += score
	}
	game.Rounds[j].Scores = cloneTotals(scores)

	s.games = slices.Clone(s.games)
	s.games[i] = game
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
}

// DeleteRound removes the round and subtracts its scores from totals.
// No-op if game or round missing.
func (s *Store) DeleteRound(gameID, roundID string) {
	s.mu.Lock()
	i := s.indexLocked(gameID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	j := roundIndex(s.games[i].Rounds, roundID)
	if j < 0 {
		s.mu.Unlock()
		return
	}

	game := cloneGame(s.games[i])
	for playerID, score := range game.Rounds[j].Scores {
		game.Totals[playerID] -= score
	}
	game.Rounds = slices.Delete(game.Rounds, j, j+1)

	s.games = slices.Clone(s.games)
	s.games[i] = game
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
}

// ClearAllGames empties the store. Confirmation is the caller's concern.
func (s *Store) ClearAllGames() {
	s.mu.Lock()
	s.games = []*models.Game{}
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.afterMutation(snapshot)
}

// Hydrate installs the persisted games and marks the store ready.
// Called once at startup by the persistence subsystem; observers are
// notified but no write-through save happens for a load.
func (s *Store) Hydrate(games []*models.Game) {
	s.mu.Lock()
	s.games = slices.Clone(games)
	s.hasHydrated = true
	snapshot := slices.Clone(s.games)
	s.mu.Unlock()

	s.notify(snapshot)
}

// SetHasHydrated flips the readiness flag.
func (s *Store) SetHasHydrated(hydrated bool) {
	s.mu.Lock()
	s.hasHydrated = hydrated
	s.mu.Unlock()
}

// HasHydrated reports whether the persisted snapshot has been loaded.
// Reads that depend on completeness gate on this.
func (s *Store) HasHydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasHydrated
}

// Subscribe registers an observer called with the new snapshot after
// every mutation and after hydration.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) indexLocked(gameID string) int {
	return slices.IndexFunc(s.games, func(g *models.Game) bool { return g.ID == gameID })
}

func roundIndex(rounds []models.Round, roundID string) int {
	return slices.IndexFunc(rounds, func(r models.Round) bool { return r.ID == roundID })
}

func (s *Store) afterMutation(snapshot []*models.Game) {
	if s.persister != nil {
		if err := s.persister.Save(snapshot); err != nil {
			slog.Error("snapshot save failed", "error", err)
		}
	}
	s.notify(snapshot)
}

func (s *Store) notify(snapshot []*models.Game) {
	s.mu.RLock()
	observers := slices.Clone(s.observers)
	s.mu.RUnlock()
	for _, fn := range observers {
		fn(snapshot)
	}
}

// cloneGame copies the parts of a game a mutation may touch. Round
// score maps are shared with the original because rounds are never
// edited in place, only replaced.
func cloneGame(g *models.Game) *models.Game {
	ng := *g
	ng.Players = slices.Clone(g.Players)
	ng.ValueMap = g.ValueMap.Clone()
	ng.Rounds = slices.Clone(g.Rounds)
	ng.Totals = cloneTotals(g.Totals)
	return &ng
}

func cloneTotals(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
