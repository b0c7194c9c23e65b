// Package models defines the catalog's domain entities and the DTOs used to render them.
//
// The package contains two categories of types:
//
// 1. Entities: in-memory records with identity, creation order and owned collections
//   - [User] : listener accounts keyed by mobile number
//   - [Artist] : performers keyed by name, with an aggregate like counter
//   - [Album] : album titles owned by exactly one artist
//   - [Song] : tracks with a denormalized artist name and a liking-user set
//   - [Playlist] : song snapshots with a growing listener set
//
// 2. Data Transfer Objects (DTOs): plain structs for output
//   - [Track] : flattened song row
//   - [PlaylistSummary] : playlist metadata and counts
//   - [PlaylistExport] : playlist with its tracks and listeners
//   - [Popularity] : most liked artist and song
//
// Entities implement [Model]. Counters and membership sets only change through entity methods
// ([Song.Like], [Playlist.AddListener], ...) so invariants such as "likes equals the number of
// liking users" hold in one place.
package models
