// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Ranks lists the card rank labels in deck order.
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// ValueMap assigns an integer point value to each card rank label.
type ValueMap map[string]int

// Clone returns an independent copy of the value map.
func (v ValueMap) Clone() ValueMap {
	if v == nil {
		return nil
	}
	out := make(ValueMap, len(v))
	for rank, value := range v {
		out[rank] = value
	}
	return out
}

// Built-in preset names
const (
	PresetDefault = "default"
	PresetSplit   = "split"
)

// DefaultValueMap returns the standard A=1 through K=13 mapping.
func DefaultValueMap() ValueMap {
	return ValueMap{
		"A": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
		"8": 8, "9": 9, "10": 10, "J": 11, "Q": 12, "K": 13,
	}
}

// SplitValueMap returns the low-cards-5 / high-cards-10 mapping.
func SplitValueMap() ValueMap {
	return ValueMap{
		"A": 5, "2": 5, "3": 5, "4": 5, "5": 5, "6": 5, "7": 5,
		"8": 10, "9": 10, "10": 10, "J": 10, "Q": 10, "K": 10,
	}
}

// Preset is a named value mapping offered to the UI when creating or
// editing a game.
type Preset struct {
	Name   string   `json:"name"`
	Values ValueMap `json:"values"`
}

// BuiltinPresets returns the presets every deployment offers, in a fixed
// order. Custom presets from the config file are appended after these.
func BuiltinPresets() []Preset {
	return []Preset{
		{Name: PresetDefault, Values: DefaultValueMap()},
		{Name: PresetSplit, Values: SplitValueMap()},
	}
}

// Domain types
//
// JSON field names follow the persisted snapshot layout, which is fixed:
// the durable record stores games exactly as they appear on the wire.

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Round records one scoring event. ValueMap is a snapshot of the game's
// mapping at creation time; later edits to the game's mapping must not
// change how this round is interpreted. Scores may omit players added to
// the game after the round existed; absent entries read as zero.
type Round struct {
	ID        string         `json:"id"`
	ValueMap  ValueMap       `json:"valueMap"`
	Scores    map[string]int `json:"scores"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Game is one tracked card game. Totals is the running per-player sum
// across Rounds, keyed by player id, and is maintained incrementally by
// the store.
type Game struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Players   []Player       `json:"players"`
	ValueMap  ValueMap       `json:"valueMap"`
	Rounds    []Round        `json:"rounds"`
	Totals    map[string]int `json:"totals"`
	CreatedAt time.Time      `json:"createdAt"`
}

// StoreState is the durable shape of the whole store (everything but the
// hydration flag).
type StoreState struct {
	Games []*Game `json:"games"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type CreateGameRequest struct {
	Title    string   `json:"title"`
	Players  []string `json:"players"`
	ValueMap ValueMap `json:"valueMap"`
}

// UpdateGameRequest carries a partial game edit. Nil fields are left
// unchanged. Players is the full replacement roster as names; retained
// names keep their player record, new names get fresh players.
type UpdateGameRequest struct {
	Title    *string  `json:"title,omitempty"`
	Players  []string `json:"players,omitempty"`
	ValueMap ValueMap `json:"valueMap,omitempty"`
}

// player id -> raw round score
type RoundScoresRequest struct {
	Scores map[string]int `json:"scores"`
}

type ScanRequest struct {
	Image    string   `json:"image"`
	ValueMap ValueMap `json:"valueMap"`
}

// Response types

type ScanResponse struct {
	RecognizedCards []string `json:"recognizedCards"`
	TotalScore      int      `json:"totalScore"`
}

type PresetsResponse struct {
	Presets []Preset `json:"presets"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
