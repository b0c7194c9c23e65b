package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playlistItem wraps [models.PlaylistSummary] to implement [list.Item].
type playlistItem struct {
	summary models.PlaylistSummary
}

func (i playlistItem) FilterValue() string { return i.summary.Title }
func (i playlistItem) Title() string       { return i.summary.Title }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%s • %s • by %s",
		shared.Pluralize(i.summary.SongCount, "song"),
		shared.Pluralize(i.summary.ListenerCount, "listener"),
		i.summary.Creator,
	)
}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	return fmt.Sprintf("%s • %s • ♥ %d", desc, shared.FormatDuration(i.track.Length), i.track.Likes)
}

func newList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.DisableQuitKeybindings()
	if width > 0 && height > 0 {
		l.SetSize(width-4, height-8)
	}
	return l
}
