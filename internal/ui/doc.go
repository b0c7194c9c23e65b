// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view catalog browser:
//  1. [PlaylistListView] : Browse playlists with their creators and listener counts
//  2. [SongListView] : Browse a playlist's songs and like them
//  3. [PopularityView] : Show the most popular artist and song
//
// Opening a playlist joins it as the configured listener (FindPlaylist); liking a song records a like for
// that listener (LikeSong). Without a listener mobile the browser is read-only.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving catalog results
// via the [Msg] union type. Catalog calls run inside [tea.Cmd]s and only DTO snapshots reach the view.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, l, p, q) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
