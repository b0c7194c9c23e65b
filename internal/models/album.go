package models

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// Album belongs to exactly one artist, fixed when the album is created.
type Album struct {
	entity
	title      string
	artistName string
	songs      []*Song
}

// NewAlbum creates an [Album] owned by artistName.
func NewAlbum(sequence int, title, artistName string) *Album {
	return &Album{entity: newEntity(sequence), title: title, artistName: artistName}
}

func (a *Album) Title() string      { return a.title }
func (a *Album) ArtistName() string { return a.artistName }

// Songs returns the album's songs in creation order.
func (a *Album) Songs() []*Song {
	return append([]*Song(nil), a.songs...)
}

// AddSong attaches song to the album.
func (a *Album) AddSong(song *Song) {
	a.songs = append(a.songs, song)
	a.touch()
}

func (a *Album) Validate() error {
	if a.title == "" {
		return fmt.Errorf("%w: album title is required", shared.ErrInvalidInput)
	}
	if a.artistName == "" {
		return fmt.Errorf("%w: album artist is required", shared.ErrInvalidInput)
	}
	return nil
}
