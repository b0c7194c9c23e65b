package repositories

import "github.com/desertthunder/catalog/internal/models"

// MostPopularArtist returns the name of the artist with the most likes.
//
// Ties go to the artist created first. ok is false when there are no artists.
func (r *CatalogRepository) MostPopularArtist() (name string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if artist := r.topArtist(); artist != nil {
		return artist.Name(), true
	}
	return "", false
}

// MostPopularSong returns the title of the song with the most likes.
//
// Ties go to the song created first. ok is false when there are no songs.
func (r *CatalogRepository) MostPopularSong() (title string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if song := r.topSong(); song != nil {
		return song.Title(), true
	}
	return "", false
}

// Popularity reports both leaders with their like counts.
func (r *CatalogRepository) Popularity() models.Popularity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var p models.Popularity
	if artist := r.topArtist(); artist != nil {
		p.Artist, p.ArtistLikes, p.HasArtist = artist.Name(), artist.Likes(), true
	}
	if song := r.topSong(); song != nil {
		p.Song, p.SongLikes, p.HasSong = song.Title(), song.Likes(), true
	}
	return p
}

func (r *CatalogRepository) topArtist() *models.Artist {
	var top *models.Artist
	for _, a := range r.artists {
		if top == nil || a.Likes() > top.Likes() {
			top = a
		}
	}
	return top
}

func (r *CatalogRepository) topSong() *models.Song {
	var top *models.Song
	for _, s := range r.songs {
		if top == nil || s.Likes() > top.Likes() {
			top = s
		}
	}
	return top
}
