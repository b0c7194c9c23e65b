package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number across the operation
	Total   int    // Total steps in the operation
	Message string // Human-readable message for display
	Err     error  // Set when the step failed
}

// Operation phase enumeration
type Phase int

const (
	CreateUsers Phase = iota
	CreateArtists
	CreateAlbums
	CreateSongs
	CreatePlaylists
	JoinPlaylists
	LikeSongs
	ExportPlaylist
	Complete
)

func (p Phase) String() string {
	switch p {
	case CreateUsers:
		return "create_users"
	case CreateArtists:
		return "create_artists"
	case CreateAlbums:
		return "create_albums"
	case CreateSongs:
		return "create_songs"
	case CreatePlaylists:
		return "create_playlists"
	case JoinPlaylists:
		return "join_playlists"
	case LikeSongs:
		return "like_songs"
	case ExportPlaylist:
		return "export_playlist"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func stepUpdate(s step, n, total int, err error) ProgressUpdate {
	msg := s.description
	if err != nil {
		msg = fmt.Sprintf("%s: %v", s.description, err)
	}
	return ProgressUpdate{Phase: s.phase, Step: n, Total: total, Message: msg, Err: err}
}

func replayCompleteUpdate(total, failed int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Replayed %d steps (%d failed)", total, failed),
	}
}

func exportingPlaylistUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exporting playlist: %s", title),
	}
}

func exportCompletedUpdate(step, total int, title string, files int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("✓ Exported %s (%d files)", title, files),
	}
}

func exportFailedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("✗ Failed to export %s: %v", title, err),
		Err:     err,
	}
}
