package models

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// Song is a track on an album.
//
// artistName is copied from the album at creation and never follows later changes.
type Song struct {
	entity
	title      string
	albumTitle string
	artistName string
	length     int
	likedBy    []*User
	liked      map[*User]struct{}
}

// NewSong creates a [Song] with no likes. length is in seconds.
func NewSong(sequence int, title, albumTitle, artistName string, length int) *Song {
	return &Song{
		entity:     newEntity(sequence),
		title:      title,
		albumTitle: albumTitle,
		artistName: artistName,
		length:     length,
		liked:      make(map[*User]struct{}),
	}
}

func (s *Song) Title() string      { return s.title }
func (s *Song) AlbumTitle() string { return s.albumTitle }
func (s *Song) ArtistName() string { return s.artistName }
func (s *Song) Length() int        { return s.length }

// Likes returns the number of distinct users who liked the song.
func (s *Song) Likes() int { return len(s.likedBy) }

// LikedBy returns the liking users in the order they liked the song.
func (s *Song) LikedBy() []*User {
	return append([]*User(nil), s.likedBy...)
}

// HasLiked reports whether u already liked the song.
func (s *Song) HasLiked(u *User) bool {
	_, ok := s.liked[u]
	return ok
}

// Like records a like from u. It returns false, changing nothing, if u already liked the song.
func (s *Song) Like(u *User) bool {
	if s.HasLiked(u) {
		return false
	}
	s.liked[u] = struct{}{}
	s.likedBy = append(s.likedBy, u)
	s.touch()
	return true
}

// Track flattens the song into a [Track] DTO.
func (s *Song) Track() Track {
	return Track{
		Title:  s.title,
		Artist: s.artistName,
		Album:  s.albumTitle,
		Length: s.length,
		Likes:  s.Likes(),
	}
}

func (s *Song) Validate() error {
	if s.title == "" {
		return fmt.Errorf("%w: song title is required", shared.ErrInvalidInput)
	}
	if s.albumTitle == "" {
		return fmt.Errorf("%w: song album is required", shared.ErrInvalidInput)
	}
	if s.length < 0 {
		return fmt.Errorf("%w: song length must not be negative", shared.ErrInvalidInput)
	}
	return nil
}
