package tasks

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/catalog/internal/shared"
)

// Scenario lists catalog entities and engagement events to replay.
type Scenario struct {
	Name      string         `toml:"name"`
	Users     []UserSpec     `toml:"users"`
	Artists   []ArtistSpec   `toml:"artists"`
	Albums    []AlbumSpec    `toml:"albums"`
	Songs     []SongSpec     `toml:"songs"`
	Playlists []PlaylistSpec `toml:"playlists"`
	Listens   []ListenSpec   `toml:"listens"`
	Likes     []LikeSpec     `toml:"likes"`
}

type UserSpec struct {
	Name   string `toml:"name"`
	Mobile string `toml:"mobile"`
}

type ArtistSpec struct {
	Name string `toml:"name"`
}

type AlbumSpec struct {
	Title  string `toml:"title"`
	Artist string `toml:"artist"`
}

type SongSpec struct {
	Title  string `toml:"title"`
	Album  string `toml:"album"`
	Length int    `toml:"length"`
}

// PlaylistSpec selects songs either by exact length or by a list of titles, never both.
type PlaylistSpec struct {
	Mobile string   `toml:"mobile"`
	Title  string   `toml:"title"`
	Length *int     `toml:"length"`
	Songs  []string `toml:"songs"`
}

// ListenSpec joins a user to a playlist.
type ListenSpec struct {
	Mobile   string `toml:"mobile"`
	Playlist string `toml:"playlist"`
}

type LikeSpec struct {
	Mobile string `toml:"mobile"`
	Song   string `toml:"song"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a TOML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("%w: failed to parse scenario: %v", shared.ErrInvalidInput, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// StepCount returns the number of replay steps the scenario produces.
func (s *Scenario) StepCount() int {
	return len(s.Users) + len(s.Artists) + len(s.Albums) + len(s.Songs) +
		len(s.Playlists) + len(s.Listens) + len(s.Likes)
}

// Validate checks required fields. Cross-references (unknown albums, users...) are left to replay.
func (s *Scenario) Validate() error {
	for i, u := range s.Users {
		if u.Name == "" || u.Mobile == "" {
			return invalid("users", i, "name and mobile are required")
		}
	}
	for i, a := range s.Artists {
		if a.Name == "" {
			return invalid("artists", i, "name is required")
		}
	}
	for i, a := range s.Albums {
		if a.Title == "" || a.Artist == "" {
			return invalid("albums", i, "title and artist are required")
		}
	}
	for i, song := range s.Songs {
		if song.Title == "" || song.Album == "" {
			return invalid("songs", i, "title and album are required")
		}
		if song.Length < 0 {
			return invalid("songs", i, "length must not be negative")
		}
	}
	for i, p := range s.Playlists {
		if p.Mobile == "" || p.Title == "" {
			return invalid("playlists", i, "mobile and title are required")
		}
		byLength, byName := p.Length != nil, len(p.Songs) > 0
		if byLength == byName {
			return invalid("playlists", i, "exactly one of length or songs is required")
		}
	}
	for i, l := range s.Listens {
		if l.Mobile == "" || l.Playlist == "" {
			return invalid("listens", i, "mobile and playlist are required")
		}
	}
	for i, l := range s.Likes {
		if l.Mobile == "" || l.Song == "" {
			return invalid("likes", i, "mobile and song are required")
		}
	}
	return nil
}

func invalid(section string, i int, msg string) error {
	return fmt.Errorf("%w: %s[%d]: %s", shared.ErrInvalidInput, section, i, msg)
}
