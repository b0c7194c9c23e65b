package repositories

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// CreateArtist appends a new artist with no likes.
func (r *CatalogRepository) CreateArtist(name string) *models.Artist {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createArtist(name)
}

// CreateAlbum appends an album under the first artist named artistName, creating that artist if none exists.
func (r *CatalogRepository) CreateAlbum(title, artistName string) *models.Album {
	r.mu.Lock()
	defer r.mu.Unlock()

	artist, ok := r.artistsByName[artistName]
	if !ok {
		artist = r.createArtist(artistName)
	}

	album := models.NewAlbum(len(r.albums)+1, title, artist.Name())
	album.SetID(shared.GenerateID())
	artist.AddAlbum(album)

	r.albums = append(r.albums, album)
	index(r.albumsByTitle, title, album)

	r.logger.Debug("created album", "title", title, "artist", artistName, "implicit_artist", !ok)
	return album
}

// GetArtist returns the first artist created with name.
func (r *CatalogRepository) GetArtist(name string) (*models.Artist, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	artist, ok := r.artistsByName[name]
	return artist, ok
}

// GetAlbum returns the first album created with title.
func (r *CatalogRepository) GetAlbum(title string) (*models.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.albumByTitle(title)
}

// ArtistAlbums returns the albums of the first artist named name, or nil if there is no such artist.
func (r *CatalogRepository) ArtistAlbums(name string) []*models.Album {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artist, ok := r.artistsByName[name]
	if !ok {
		return nil
	}
	return artist.Albums()
}

// AlbumSongs returns the songs of the first album titled title.
func (r *CatalogRepository) AlbumSongs(title string) ([]*models.Song, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	album, err := r.albumByTitle(title)
	if err != nil {
		return nil, err
	}
	return album.Songs(), nil
}

// createArtist must be called with r.mu held for writing.
func (r *CatalogRepository) createArtist(name string) *models.Artist {
	artist := models.NewArtist(len(r.artists)+1, name)
	artist.SetID(shared.GenerateID())

	r.artists = append(r.artists, artist)
	index(r.artistsByName, name, artist)

	r.logger.Debug("created artist", "name", name, "sequence", artist.Sequence())
	return artist
}

// albumByTitle must be called with r.mu held.
func (r *CatalogRepository) albumByTitle(title string) (*models.Album, error) {
	album, ok := r.albumsByTitle[title]
	if !ok {
		r.logger.Warn("album lookup failed", "title", title)
		return nil, fmt.Errorf("%w: %s", shared.ErrAlbumNotFound, title)
	}
	return album, nil
}
