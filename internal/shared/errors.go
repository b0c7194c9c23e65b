package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Lookup errors. Each kind wraps [ErrNotFound] so callers can match either.
	ErrNotFound         = fmt.Errorf("not found")
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrAlbumNotFound    = fmt.Errorf("album %w", ErrNotFound)
	ErrPlaylistNotFound = fmt.Errorf("playlist %w", ErrNotFound)
	ErrSongNotFound     = fmt.Errorf("song %w", ErrNotFound)

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
