package models

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// Artist is a performer identified by name.
//
// The like counter aggregates likes across all songs credited to the artist.
type Artist struct {
	entity
	name   string
	likes  int
	albums []*Album
}

// NewArtist creates an [Artist] with zero likes.
func NewArtist(sequence int, name string) *Artist {
	return &Artist{entity: newEntity(sequence), name: name}
}

func (a *Artist) Name() string { return a.name }
func (a *Artist) Likes() int   { return a.likes }

// Albums returns the artist's albums in creation order.
func (a *Artist) Albums() []*Album {
	return append([]*Album(nil), a.albums...)
}

// AddAlbum attaches album to the artist.
func (a *Artist) AddAlbum(album *Album) {
	a.albums = append(a.albums, album)
	a.touch()
}

// IncrementLikes records one more like on a song credited to this artist.
func (a *Artist) IncrementLikes() {
	a.likes++
	a.touch()
}

func (a *Artist) Validate() error {
	if a.name == "" {
		return fmt.Errorf("%w: artist name is required", shared.ErrInvalidInput)
	}
	return nil
}
