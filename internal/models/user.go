package models

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// User is a listener identified by mobile number.
type User struct {
	entity
	name      string
	mobile    string
	playlists []*Playlist
	latest    *Playlist
}

// NewUser creates a [User] with the given creation sequence.
func NewUser(sequence int, name, mobile string) *User {
	return &User{entity: newEntity(sequence), name: name, mobile: mobile}
}

func (u *User) Name() string   { return u.name }
func (u *User) Mobile() string { return u.mobile }

// Playlists returns every playlist this user created, oldest first.
func (u *User) Playlists() []*Playlist {
	return append([]*Playlist(nil), u.playlists...)
}

// LatestPlaylist returns the most recently created playlist, or nil.
func (u *User) LatestPlaylist() *Playlist { return u.latest }

// RecordPlaylist appends p to the creation history and makes it the latest playlist.
func (u *User) RecordPlaylist(p *Playlist) {
	u.playlists = append(u.playlists, p)
	u.latest = p
	u.touch()
}

func (u *User) Validate() error {
	if u.mobile == "" {
		return fmt.Errorf("%w: user mobile is required", shared.ErrInvalidInput)
	}
	if u.name == "" {
		return fmt.Errorf("%w: user name is required", shared.ErrInvalidInput)
	}
	return nil
}
