package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/catalog/internal/shared"
)

var (
	_ Model = (*User)(nil)
	_ Model = (*Artist)(nil)
	_ Model = (*Album)(nil)
	_ Model = (*Song)(nil)
	_ Model = (*Playlist)(nil)
)

func TestSong_Like(t *testing.T) {
	alice := NewUser(1, "Alice", "555-0100")
	bob := NewUser(2, "Bob", "555-0101")
	song := NewSong(1, "Beat It", "Thriller", "Jackson", 258)

	t.Run("first like counts", func(t *testing.T) {
		if !song.Like(alice) {
			t.Fatal("expected first like to be recorded")
		}
		if song.Likes() != 1 {
			t.Errorf("expected 1 like, got %d", song.Likes())
		}
	})

	t.Run("repeat like is ignored", func(t *testing.T) {
		if song.Like(alice) {
			t.Error("expected repeat like to be rejected")
		}
		if song.Likes() != 1 {
			t.Errorf("expected 1 like, got %d", song.Likes())
		}
	})

	t.Run("likes equal liking users", func(t *testing.T) {
		song.Like(bob)
		if song.Likes() != len(song.LikedBy()) {
			t.Errorf("likes %d != liking users %d", song.Likes(), len(song.LikedBy()))
		}
		if !song.HasLiked(bob) {
			t.Error("expected bob to be recorded")
		}
	})
}

func TestPlaylist(t *testing.T) {
	creator := NewUser(1, "Alice", "555-0100")
	guest := NewUser(2, "Bob", "555-0101")
	songs := []*Song{
		NewSong(1, "One", "Album", "Artist", 180),
		NewSong(2, "Two", "Album", "Artist", 200),
	}

	p := NewPlaylist(1, "Mix", creator, songs)

	t.Run("creator is first listener", func(t *testing.T) {
		listeners := p.Listeners()
		if len(listeners) != 1 || listeners[0] != creator {
			t.Fatalf("expected creator as sole listener, got %v", listeners)
		}
	})

	t.Run("songs are a snapshot", func(t *testing.T) {
		songs[0] = NewSong(3, "Replaced", "Album", "Artist", 1)
		if p.Songs()[0].Title() != "One" {
			t.Errorf("playlist should not see changes to the source slice")
		}
	})

	t.Run("AddListener deduplicates", func(t *testing.T) {
		if !p.AddListener(guest) {
			t.Error("expected guest to be added")
		}
		if p.AddListener(guest) || p.AddListener(creator) {
			t.Error("expected existing listeners to be rejected")
		}
		if len(p.Listeners()) != 2 {
			t.Errorf("expected 2 listeners, got %d", len(p.Listeners()))
		}
	})

	t.Run("Export", func(t *testing.T) {
		export := p.Export()
		if export.Playlist.Creator != "Alice" || export.Playlist.CreatorMobile != "555-0100" {
			t.Errorf("unexpected creator in summary: %+v", export.Playlist)
		}
		if export.Playlist.SongCount != 2 || export.Playlist.TotalLength != 380 {
			t.Errorf("unexpected counts in summary: %+v", export.Playlist)
		}
		if len(export.Tracks) != 2 || export.Tracks[1].Title != "Two" {
			t.Errorf("unexpected tracks: %+v", export.Tracks)
		}
		if len(export.Listeners) != 2 || export.Listeners[1] != "555-0101" {
			t.Errorf("unexpected listeners: %v", export.Listeners)
		}
	})
}

func TestUser_RecordPlaylist(t *testing.T) {
	u := NewUser(1, "Alice", "555-0100")
	first := NewPlaylist(1, "First", u, nil)
	second := NewPlaylist(2, "Second", u, nil)

	u.RecordPlaylist(first)
	u.RecordPlaylist(second)

	if u.LatestPlaylist() != second {
		t.Errorf("expected latest playlist to be overwritten")
	}
	if got := u.Playlists(); len(got) != 2 || got[0] != first {
		t.Errorf("expected history of both playlists, got %d", len(got))
	}
}

func TestValidate(t *testing.T) {
	owner := NewUser(1, "Alice", "555-0100")

	tests := []struct {
		name    string
		model   Model
		wantErr bool
	}{
		{name: "valid user", model: owner},
		{name: "user without mobile", model: NewUser(1, "Alice", ""), wantErr: true},
		{name: "valid artist", model: NewArtist(1, "Jackson")},
		{name: "artist without name", model: NewArtist(1, ""), wantErr: true},
		{name: "album without artist", model: NewAlbum(1, "Thriller", ""), wantErr: true},
		{name: "valid song", model: NewSong(1, "Beat It", "Thriller", "Jackson", 258)},
		{name: "negative length", model: NewSong(1, "Beat It", "Thriller", "Jackson", -1), wantErr: true},
		{name: "playlist without creator", model: NewPlaylist(1, "Mix", nil, nil), wantErr: true},
		{name: "valid playlist", model: NewPlaylist(1, "Mix", owner, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if tt.wantErr && !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}
