package models

// Track is a flattened song row used for output.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Length int    `json:"length"` // seconds
	Likes  int    `json:"likes"`
}

// PlaylistSummary holds playlist metadata without its tracks.
type PlaylistSummary struct {
	Sequence      int    `json:"sequence"` // creation position, unique per playlist
	Title         string `json:"title"`
	Creator       string `json:"creator"`
	CreatorMobile string `json:"creator_mobile"`
	SongCount     int    `json:"song_count"`
	ListenerCount int    `json:"listener_count"`
	TotalLength   int    `json:"total_length"` // seconds
}

// PlaylistExport is a playlist with its tracks and listener mobiles.
type PlaylistExport struct {
	Playlist  PlaylistSummary `json:"playlist"`
	Tracks    []Track         `json:"tracks"`
	Listeners []string        `json:"listeners"`
}

// Popularity reports the most liked artist and song.
//
// The Has* flags are false when the corresponding collection is empty.
type Popularity struct {
	Artist      string `json:"artist,omitempty"`
	ArtistLikes int    `json:"artist_likes"`
	HasArtist   bool   `json:"has_artist"`
	Song        string `json:"song,omitempty"`
	SongLikes   int    `json:"song_likes"`
	HasSong     bool   `json:"has_song"`
}
