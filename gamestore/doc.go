// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gamestore owns all game, round, and player state.

# Invariant

For every game, Totals[p] equals the sum over all rounds of that round's
Scores[p], treating absent entries as zero, for every player id that has
ever been scored. Mutations maintain this incrementally (delta updates,
never a full rescan); RecomputeTotals provides the equivalent full rescan
for verification.

# Update discipline

Published games are immutable snapshots shared by pointer. A mutation
copies only the affected game and installs the copy; unaffected games
keep their pointer across calls, so observers and HTTP handlers detect
change by identity comparison.

# No-op policy

Mutators given an unknown game or round id do nothing. Ids are always
read from current state by the caller, so an unknown id means stale
input. Missing map keys (a player absent from a round's scores, a player
without a recorded total) read as zero, never as an error.

# Hydration

The store starts empty; the persistence subsystem loads the durable
snapshot and calls Hydrate exactly once, which installs the games and
flips HasHydrated. Reads that depend on completeness ("does this game
exist") gate on HasHydrated to avoid a false not-found before load.

# Persistence

A Persister, when supplied, is handed the full snapshot after every
mutation (write-through). Saves are best-effort: failures are logged,
the mutation is never rolled back.
*/
package gamestore
