// Package tasks drives the catalog from scenario files with real-time progress reporting.
//
// # Scenarios
//
// A [Scenario] is a TOML document describing users, artists, albums, songs, playlists, listens
// and likes. [LoadScenario] and [ParseScenario] decode and validate it.
//
// # Core Operations
//
//  1. [Engine.Replay] : apply a scenario to a catalog
//     - Steps run in phase order: users, artists, albums, songs, playlists, listens, likes
//     - Failed lookups are recorded per step and do not stop the replay
//     - Optional throttling via golang.org/x/time/rate
//
//  2. [Engine.ExportPlaylists] : write many playlists to disk concurrently
//     - Worker pool with rate limiting
//     - Writes a manifest summarizing every export
//
// # Progress Reporting
//
// All operations accept an optional channel of [ProgressUpdate]. Updates use select with default
// so a slow or absent reader never blocks the engine.
package tasks
