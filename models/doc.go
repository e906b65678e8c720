// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Internal data structures:

  - Game: one tracked card game with players, rounds, and running totals
  - Round: one scoring event with a value-map snapshot and raw scores
  - Player: immutable id plus display name
  - ValueMap: card rank label -> integer point value
  - StoreState: the durable shape of the whole store

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: password
  - CreateGameRequest: title, players, valueMap
  - UpdateGameRequest: title?, players?, valueMap? (partial edit)
  - RoundScoresRequest: scores (map[playerID]int)
  - ScanRequest: image, valueMap

# Response Types

Types for JSON responses:

  - ScanResponse: recognizedCards, totalScore
  - PresetsResponse: presets
  - ErrorResponse: error, message

# Presets

Built-in value-map presets, mirrored by the preset names:

	PresetDefault = "default"  (A=1 .. K=13)
	PresetSplit   = "split"    (A-7 worth 5, 8-K worth 10)

Custom presets can be added through the config file; see package cliparse.
*/
package models
