package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	SongListView
	PopularityView
)

// Catalog is the subset of repositories.CatalogRepository the TUI reads and writes.
type Catalog interface {
	PlaylistSummaries() []models.PlaylistSummary
	FindPlaylist(mobile, playlistTitle string) (*models.Playlist, error)
	ExportPlaylist(title string) (*models.PlaylistExport, error)
	LikeSong(mobile, songTitle string) (*models.Song, error)
	Popularity() models.Popularity
}

// Model represents the TUI application state.
type Model struct {
	catalog      Catalog
	mobile       string
	logger       *log.Logger
	view         ViewState
	previous     ViewState
	width        int
	height       int
	playlistList list.Model
	songList     list.Model
	selected     *models.PlaylistExport
	popularity   models.Popularity
	status       string
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a TUI model that acts as the listener identified by mobile.
//
// An empty mobile browses without joining playlists or liking songs.
func NewModel(catalog Catalog, mobile string, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &Model{
		catalog:      catalog,
		mobile:       mobile,
		logger:       shared.WithLogger(logger, "component", "tui"),
		view:         PlaylistListView,
		playlistList: newList(nil, "Playlists", 0, 0),
		songList:     newList(nil, "Songs", 0, 0),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// ViewState returns the active view.
func (m *Model) ViewState() ViewState { return m.view }

// Init loads the playlist list.
func (m *Model) Init() tea.Cmd {
	return m.loadPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.songList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case SongListView:
			return m.handleSongListKeys(msg)
		case PopularityView:
			return m.handlePopularityKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgPlaylistsLoaded:
		summaries := msg.data.([]models.PlaylistSummary)
		items := make([]list.Item, len(summaries))
		for i, s := range summaries {
			items[i] = playlistItem{summary: s}
		}
		cmd := m.playlistList.SetItems(items)
		m.playlistList.Title = fmt.Sprintf("Playlists (%d)", len(summaries))
		return m, cmd

	case MsgPlaylistOpened:
		res := msg.data.(playlistResult)
		if res.err != nil {
			m.err = res.err
			return m, nil
		}
		m.err = nil
		m.selected = res.export
		m.songList = newList(trackItems(res.export), fmt.Sprintf("Songs in '%s'", res.export.Playlist.Title), m.width, m.height)
		m.view = SongListView
		m.status = ""
		if m.mobile != "" {
			m.status = fmt.Sprintf("Listening as %s • %s", m.mobile, shared.Pluralize(len(res.export.Listeners), "listener"))
		}
		return m, nil

	case MsgSongLiked:
		res := msg.data.(likeResult)
		if res.err != nil {
			m.err = res.err
			return m, nil
		}
		m.err = nil
		m.selected = res.export
		cmd := m.songList.SetItems(trackItems(res.export))
		m.status = fmt.Sprintf("♥ Liked %s", res.song)
		return m, cmd

	case MsgPopularityLoaded:
		m.popularity = msg.data.(models.Popularity)
		if m.view != PopularityView {
			m.previous = m.view
		}
		m.view = PopularityView
		return m, nil
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case SongListView:
		return m.renderSongList()
	case PopularityView:
		return m.renderPopularity()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.playlistList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.popular):
		return m, m.loadPopularity()
	case key.Matches(msg, m.keys.enter):
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			return m, m.openPlaylist(pl.summary.Title)
		}
		return m, nil
	}

	return m.updateLists(msg)
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.songList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = PlaylistListView
		m.selected = nil
		m.status = ""
		m.err = nil
		return m, m.loadPlaylists()
	case key.Matches(msg, m.keys.popular):
		return m, m.loadPopularity()
	case key.Matches(msg, m.keys.like):
		if m.mobile == "" {
			m.status = "Start with --mobile to like songs"
			return m, nil
		}
		if t, ok := m.songList.SelectedItem().(trackItem); ok {
			return m, m.likeSong(t.track.Title)
		}
		return m, nil
	}

	return m.updateLists(msg)
}

func (m *Model) handlePopularityKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.popular):
		m.view = m.previous
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case SongListView:
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		return playlistsLoadedMsg(m.catalog.PlaylistSummaries())
	}
}

func (m *Model) openPlaylist(title string) tea.Cmd {
	mobile := m.mobile
	return func() tea.Msg {
		if mobile != "" {
			if _, err := m.catalog.FindPlaylist(mobile, title); err != nil {
				return playlistOpenedMsg(nil, err)
			}
		}
		export, err := m.catalog.ExportPlaylist(title)
		return playlistOpenedMsg(export, err)
	}
}

func (m *Model) likeSong(song string) tea.Cmd {
	mobile, playlist := m.mobile, m.selected.Playlist.Title
	return func() tea.Msg {
		if _, err := m.catalog.LikeSong(mobile, song); err != nil {
			m.logger.Warn("like failed", "mobile", mobile, "song", song, "error", err)
			return songLikedMsg(song, nil, err)
		}
		export, err := m.catalog.ExportPlaylist(playlist)
		return songLikedMsg(song, export, err)
	}
}

func (m *Model) loadPopularity() tea.Cmd {
	return func() tea.Msg {
		return popularityLoadedMsg(m.catalog.Popularity())
	}
}

func trackItems(export *models.PlaylistExport) []list.Item {
	items := make([]list.Item, len(export.Tracks))
	for i, t := range export.Tracks {
		items[i] = trackItem{track: t}
	}
	return items
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.popular, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n%s", m.playlistList.View(), m.renderStatus(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderSongList() string {
	helpKeys := []key.Binding{m.keys.like, m.keys.popular, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n%s", m.songList.View(), m.renderStatus(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.status == "" {
		return ""
	}
	return styles.ok.Render(m.status)
}

func (m *Model) renderPopularity() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Most Popular"))
	b.WriteString("\n")

	if m.popularity.HasArtist {
		fmt.Fprintf(&b, "Artist: %s (%s)\n", m.popularity.Artist, shared.Pluralize(m.popularity.ArtistLikes, "like"))
	} else {
		b.WriteString(styles.warn.Render("Artist: none") + "\n")
	}
	if m.popularity.HasSong {
		fmt.Fprintf(&b, "Song:   %s (%s)", m.popularity.Song, shared.Pluralize(m.popularity.SongLikes, "like"))
	} else {
		b.WriteString(styles.warn.Render("Song:   none"))
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", styles.panel.Render(b.String()), m.help.ShortHelpView(helpKeys))
}
