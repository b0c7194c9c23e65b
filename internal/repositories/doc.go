// Package repositories implements the in-memory music catalog.
//
// [CatalogRepository] owns every entity collection and the relationships between them. Entities
// are kept in creation order and indexed by natural key (mobile, name, title); when two entities
// share a key, the first one created wins every lookup.
//
// Key Operations:
//   - Creation : [CatalogRepository.CreateUser], [CatalogRepository.CreateArtist], [CatalogRepository.CreateAlbum], [CatalogRepository.CreateSong]
//   - Playlists : [CatalogRepository.CreatePlaylistOnLength], [CatalogRepository.CreatePlaylistOnName], [CatalogRepository.FindPlaylist]
//   - Engagement : [CatalogRepository.LikeSong], [CatalogRepository.MostPopularArtist], [CatalogRepository.MostPopularSong]
//
// Failed lookups return errors wrapping the shared not-found sentinels (shared.ErrUserNotFound, ...).
// A single read/write lock guards all state.
package repositories
