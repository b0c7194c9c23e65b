package repositories

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// CreatePlaylistOnLength creates a playlist of every song whose length equals length.
func (r *CatalogRepository) CreatePlaylistOnLength(mobile, title string, length int) (*models.Playlist, error) {
	return r.createPlaylist(mobile, title, func(s *models.Song) bool {
		return s.Length() == length
	})
}

// CreatePlaylistOnName creates a playlist of every song whose title appears in songTitles.
//
// Songs sharing a title are all included.
func (r *CatalogRepository) CreatePlaylistOnName(mobile, title string, songTitles []string) (*models.Playlist, error) {
	wanted := make(map[string]struct{}, len(songTitles))
	for _, t := range songTitles {
		wanted[t] = struct{}{}
	}
	return r.createPlaylist(mobile, title, func(s *models.Song) bool {
		_, ok := wanted[s.Title()]
		return ok
	})
}

// FindPlaylist returns the first playlist titled playlistTitle and enrolls the user as a listener if they are not one already.
func (r *CatalogRepository) FindPlaylist(mobile, playlistTitle string) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.userByMobile(mobile)
	if err != nil {
		return nil, err
	}

	playlist, err := r.playlistByTitle(playlistTitle)
	if err != nil {
		return nil, err
	}

	if playlist.AddListener(user) {
		r.logger.Debug("listener joined playlist", "mobile", mobile, "playlist", playlistTitle, "listeners", len(playlist.Listeners()))
	}
	return playlist, nil
}

// GetPlaylist returns the first playlist titled title without enrolling anyone.
func (r *CatalogRepository) GetPlaylist(title string) (*models.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playlistByTitle(title)
}

// ExportPlaylist snapshots the first playlist titled title, including current like counts.
func (r *CatalogRepository) ExportPlaylist(title string) (*models.PlaylistExport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playlist, err := r.playlistByTitle(title)
	if err != nil {
		return nil, err
	}
	return playlist.Export(), nil
}

// PlaylistExports snapshots every playlist in creation order, including those sharing a title.
func (r *CatalogRepository) PlaylistExports() []*models.PlaylistExport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exports := make([]*models.PlaylistExport, len(r.playlists))
	for i, p := range r.playlists {
		exports[i] = p.Export()
	}
	return exports
}

// PlaylistSummaries summarizes every playlist in creation order.
func (r *CatalogRepository) PlaylistSummaries() []models.PlaylistSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.PlaylistSummary, len(r.playlists))
	for i, p := range r.playlists {
		summaries[i] = p.Summary()
	}
	return summaries
}

// PlaylistSongs returns the song snapshot of the first playlist titled title.
func (r *CatalogRepository) PlaylistSongs(title string) ([]*models.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playlist, err := r.playlistByTitle(title)
	if err != nil {
		return nil, err
	}
	return playlist.Songs(), nil
}

// PlaylistListeners returns the listeners of the first playlist titled title, creator first.
func (r *CatalogRepository) PlaylistListeners(title string) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playlist, err := r.playlistByTitle(title)
	if err != nil {
		return nil, err
	}
	return playlist.Listeners(), nil
}

// createPlaylist selects songs in creation order and records the playlist against its creator.
func (r *CatalogRepository) createPlaylist(mobile, title string, keep func(*models.Song) bool) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.userByMobile(mobile)
	if err != nil {
		return nil, err
	}

	var selected []*models.Song
	for _, s := range r.songs {
		if keep(s) {
			selected = append(selected, s)
		}
	}

	playlist := models.NewPlaylist(len(r.playlists)+1, title, user, selected)
	playlist.SetID(shared.GenerateID())
	user.RecordPlaylist(playlist)

	r.playlists = append(r.playlists, playlist)
	index(r.playlistsByTitle, title, playlist)

	r.logger.Debug("created playlist", "title", title, "creator", mobile, "songs", len(selected))
	return playlist, nil
}

// playlistByTitle must be called with r.mu held.
func (r *CatalogRepository) playlistByTitle(title string) (*models.Playlist, error) {
	playlist, ok := r.playlistsByTitle[title]
	if !ok {
		r.logger.Warn("playlist lookup failed", "title", title)
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, title)
	}
	return playlist, nil
}
