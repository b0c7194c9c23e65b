package repositories

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// CatalogRepository holds users, artists, albums, songs and playlists in memory.
type CatalogRepository struct {
	mu     sync.RWMutex
	logger *log.Logger

	users     []*models.User
	artists   []*models.Artist
	albums    []*models.Album
	songs     []*models.Song
	playlists []*models.Playlist

	usersByMobile    map[string]*models.User
	artistsByName    map[string]*models.Artist
	albumsByTitle    map[string]*models.Album
	songsByTitle     map[string]*models.Song
	playlistsByTitle map[string]*models.Playlist
}

// NewCatalogRepository creates an empty [CatalogRepository].
//
// A nil logger discards output.
func NewCatalogRepository(logger *log.Logger) *CatalogRepository {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &CatalogRepository{
		logger:           shared.WithLogger(logger, "component", "catalog"),
		usersByMobile:    make(map[string]*models.User),
		artistsByName:    make(map[string]*models.Artist),
		albumsByTitle:    make(map[string]*models.Album),
		songsByTitle:     make(map[string]*models.Song),
		playlistsByTitle: make(map[string]*models.Playlist),
	}
}

// index stores v under key unless an earlier entity already claimed it.
func index[T any](m map[string]T, key string, v T) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

// Users returns all users in creation order.
func (r *CatalogRepository) Users() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.User(nil), r.users...)
}

// Artists returns all artists in creation order.
func (r *CatalogRepository) Artists() []*models.Artist {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Artist(nil), r.artists...)
}

// Albums returns all albums in creation order.
func (r *CatalogRepository) Albums() []*models.Album {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Album(nil), r.albums...)
}

// Songs returns all songs in creation order.
func (r *CatalogRepository) Songs() []*models.Song {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Song(nil), r.songs...)
}

// Playlists returns all playlists in creation order.
func (r *CatalogRepository) Playlists() []*models.Playlist {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Playlist(nil), r.playlists...)
}
