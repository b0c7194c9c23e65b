package repositories

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// CreateSong appends a song to the first album titled albumTitle.
//
// The album's artist name is copied onto the song. Nothing is recorded when the album does not exist.
func (r *CatalogRepository) CreateSong(title, albumTitle string, length int) (*models.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	album, err := r.albumByTitle(albumTitle)
	if err != nil {
		return nil, err
	}

	song := models.NewSong(len(r.songs)+1, title, album.Title(), album.ArtistName(), length)
	song.SetID(shared.GenerateID())
	album.AddSong(song)

	r.songs = append(r.songs, song)
	index(r.songsByTitle, title, song)

	r.logger.Debug("created song", "title", title, "album", albumTitle, "artist", song.ArtistName(), "length", length)
	return song, nil
}

// GetSong returns the first song created with title.
func (r *CatalogRepository) GetSong(title string) (*models.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.songByTitle(title)
}

// SongLikers returns the users who liked the first song titled title.
func (r *CatalogRepository) SongLikers(title string) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	song, err := r.songByTitle(title)
	if err != nil {
		return nil, err
	}
	return song.LikedBy(), nil
}

// LikeSong records a like on the first song titled songTitle by the user with mobile.
//
// A user's repeat like on the same song changes nothing. A new like also increments the first
// artist whose name equals the song's artist name; if no such artist exists only the song counts it.
func (r *CatalogRepository) LikeSong(mobile, songTitle string) (*models.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.userByMobile(mobile)
	if err != nil {
		return nil, err
	}

	song, err := r.songByTitle(songTitle)
	if err != nil {
		return nil, err
	}

	if !song.Like(user) {
		r.logger.Debug("song already liked", "mobile", mobile, "song", songTitle)
		return song, nil
	}

	if artist, ok := r.artistsByName[song.ArtistName()]; ok {
		artist.IncrementLikes()
	} else {
		r.logger.Debug("no artist to credit like", "artist", song.ArtistName())
	}

	r.logger.Debug("liked song", "mobile", mobile, "song", songTitle, "likes", song.Likes())
	return song, nil
}

// songByTitle must be called with r.mu held.
func (r *CatalogRepository) songByTitle(title string) (*models.Song, error) {
	song, ok := r.songsByTitle[title]
	if !ok {
		r.logger.Warn("song lookup failed", "title", title)
		return nil, fmt.Errorf("%w: %s", shared.ErrSongNotFound, title)
	}
	return song, nil
}
