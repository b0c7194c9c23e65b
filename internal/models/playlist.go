package models

import (
	"fmt"

	"github.com/desertthunder/catalog/internal/shared"
)

// Playlist is a fixed selection of songs with a growing set of listeners.
//
// The song list is a snapshot taken at creation. The creator is always the first listener.
type Playlist struct {
	entity
	title     string
	creator   *User
	songs     []*Song
	listeners []*User
	listening map[*User]struct{}
}

// NewPlaylist creates a [Playlist] whose only listener is creator.
func NewPlaylist(sequence int, title string, creator *User, songs []*Song) *Playlist {
	p := &Playlist{
		entity:    newEntity(sequence),
		title:     title,
		creator:   creator,
		songs:     append([]*Song(nil), songs...),
		listening: make(map[*User]struct{}),
	}
	p.AddListener(creator)
	return p
}

func (p *Playlist) Title() string  { return p.title }
func (p *Playlist) Creator() *User { return p.creator }

// Songs returns the snapshot taken at creation.
func (p *Playlist) Songs() []*Song {
	return append([]*Song(nil), p.songs...)
}

// Listeners returns the listener set in join order, creator first.
func (p *Playlist) Listeners() []*User {
	return append([]*User(nil), p.listeners...)
}

// HasListener reports whether u has joined the playlist.
func (p *Playlist) HasListener(u *User) bool {
	_, ok := p.listening[u]
	return ok
}

// AddListener enrolls u. It returns false if u was already a listener.
func (p *Playlist) AddListener(u *User) bool {
	if u == nil || p.HasListener(u) {
		return false
	}
	p.listening[u] = struct{}{}
	p.listeners = append(p.listeners, u)
	p.touch()
	return true
}

// Summary builds a [PlaylistSummary] DTO.
func (p *Playlist) Summary() PlaylistSummary {
	summary := PlaylistSummary{
		Sequence:      p.Sequence(),
		Title:         p.title,
		SongCount:     len(p.songs),
		ListenerCount: len(p.listeners),
	}
	for _, s := range p.songs {
		summary.TotalLength += s.Length()
	}
	if p.creator != nil {
		summary.Creator = p.creator.Name()
		summary.CreatorMobile = p.creator.Mobile()
	}
	return summary
}

// Export builds a [PlaylistExport] with current like counts.
func (p *Playlist) Export() *PlaylistExport {
	export := &PlaylistExport{
		Playlist:  p.Summary(),
		Tracks:    make([]Track, 0, len(p.songs)),
		Listeners: make([]string, 0, len(p.listeners)),
	}
	for _, s := range p.songs {
		export.Tracks = append(export.Tracks, s.Track())
	}
	for _, u := range p.listeners {
		export.Listeners = append(export.Listeners, u.Mobile())
	}
	return export
}

func (p *Playlist) Validate() error {
	if p.title == "" {
		return fmt.Errorf("%w: playlist title is required", shared.ErrInvalidInput)
	}
	if p.creator == nil {
		return fmt.Errorf("%w: playlist creator is required", shared.ErrInvalidInput)
	}
	return nil
}
