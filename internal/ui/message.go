package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/catalog/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPlaylistsLoaded MsgKind = iota
	MsgPlaylistOpened
	MsgSongLiked
	MsgPopularityLoaded
)

// playlistResult carries a playlist snapshot, or the error that prevented it.
type playlistResult struct {
	export *models.PlaylistExport
	err    error
}

// likeResult carries the refreshed playlist after a like.
type likeResult struct {
	song   string
	export *models.PlaylistExport
	err    error
}

// playlistsLoadedMsg is the constructor for [MsgPlaylistsLoaded]
func playlistsLoadedMsg(summaries []models.PlaylistSummary) Msg {
	return Msg{kind: MsgPlaylistsLoaded, data: summaries}
}

// playlistOpenedMsg is the constructor for [MsgPlaylistOpened]
func playlistOpenedMsg(export *models.PlaylistExport, err error) Msg {
	return Msg{kind: MsgPlaylistOpened, data: playlistResult{export, err}}
}

// songLikedMsg is the constructor for [MsgSongLiked]
func songLikedMsg(song string, export *models.PlaylistExport, err error) Msg {
	return Msg{kind: MsgSongLiked, data: likeResult{song, export, err}}
}

// popularityLoadedMsg is the constructor for [MsgPopularityLoaded]
func popularityLoadedMsg(p models.Popularity) Msg {
	return Msg{kind: MsgPopularityLoaded, data: p}
}
