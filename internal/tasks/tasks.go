package tasks

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	"golang.org/x/time/rate"
)

// Catalog is the subset of repositories.CatalogRepository the engine drives.
type Catalog interface {
	CreateUser(name, mobile string) *models.User
	CreateArtist(name string) *models.Artist
	CreateAlbum(title, artistName string) *models.Album
	CreateSong(title, albumTitle string, length int) (*models.Song, error)
	CreatePlaylistOnLength(mobile, title string, length int) (*models.Playlist, error)
	CreatePlaylistOnName(mobile, title string, songTitles []string) (*models.Playlist, error)
	FindPlaylist(mobile, playlistTitle string) (*models.Playlist, error)
	PlaylistExports() []*models.PlaylistExport
	LikeSong(mobile, songTitle string) (*models.Song, error)
	Popularity() models.Popularity
}

// StepResult records a replay step that failed.
type StepResult struct {
	Phase       Phase  // Phase the step belongs to
	Description string // Human-readable step
	Err         error  // Lookup failure
}

// ReplayResult summarizes a scenario replay.
type ReplayResult struct {
	Scenario   string
	TotalSteps int
	Applied    int
	Failed     []StepResult
	Popularity models.Popularity
}

// ReplayOpts configures [Engine.Replay].
type ReplayOpts struct {
	RateLimit float64 // Steps per second, 0 disables throttling
}

// Engine applies scenarios and exports playlists against a [Catalog].
type Engine struct {
	catalog Catalog
	logger  *log.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(catalog Catalog, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &Engine{catalog: catalog, logger: shared.WithLogger(logger, "component", "engine")}
}

// step is one catalog call produced from a scenario entry.
type step struct {
	phase       Phase
	description string
	apply       func(Catalog) error
}

// sendProgress sends a progress update through the channel without blocking.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Replay applies every scenario step in phase order.
//
// Lookup failures are collected in [ReplayResult.Failed]. Replay stops early only when ctx is
// cancelled, returning the partial result with the context error.
func (e *Engine) Replay(ctx context.Context, progress chan<- ProgressUpdate, s *Scenario, opts ReplayOpts) (*ReplayResult, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: scenario is required", shared.ErrMissingArgument)
	}

	steps := buildSteps(s)
	result := &ReplayResult{Scenario: s.Name, TotalSteps: len(steps)}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	e.logger.Info("replaying scenario", "name", s.Name, "steps", len(steps), "rate_limit", opts.RateLimit)

	current := Phase(-1)
	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("replay cancelled: %w", err)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return result, fmt.Errorf("replay cancelled: %w", err)
			}
		}

		if st.phase != current {
			current = st.phase
			e.logger.Info("phase started", "phase", current)
		}

		err := st.apply(e.catalog)
		if err != nil {
			result.Failed = append(result.Failed, StepResult{Phase: st.phase, Description: st.description, Err: err})
			e.logger.Warn("step failed", "phase", st.phase, "step", st.description, "error", err)
		} else {
			result.Applied++
		}
		e.sendProgress(progress, stepUpdate(st, i+1, len(steps), err))
	}

	result.Popularity = e.catalog.Popularity()
	e.sendProgress(progress, replayCompleteUpdate(len(steps), len(result.Failed)))
	e.logger.Info("replay complete", "applied", result.Applied, "failed", len(result.Failed))
	return result, nil
}

func buildSteps(s *Scenario) []step {
	steps := make([]step, 0, s.StepCount())

	for _, u := range s.Users {
		steps = append(steps, step{CreateUsers, fmt.Sprintf("create user %s (%s)", u.Name, u.Mobile), func(c Catalog) error {
			c.CreateUser(u.Name, u.Mobile)
			return nil
		}})
	}
	for _, a := range s.Artists {
		steps = append(steps, step{CreateArtists, fmt.Sprintf("create artist %s", a.Name), func(c Catalog) error {
			c.CreateArtist(a.Name)
			return nil
		}})
	}
	for _, a := range s.Albums {
		steps = append(steps, step{CreateAlbums, fmt.Sprintf("create album %s by %s", a.Title, a.Artist), func(c Catalog) error {
			c.CreateAlbum(a.Title, a.Artist)
			return nil
		}})
	}
	for _, song := range s.Songs {
		steps = append(steps, step{CreateSongs, fmt.Sprintf("create song %s on %s", song.Title, song.Album), func(c Catalog) error {
			_, err := c.CreateSong(song.Title, song.Album, song.Length)
			return err
		}})
	}
	for _, p := range s.Playlists {
		if p.Length != nil {
			length := *p.Length
			steps = append(steps, step{CreatePlaylists, fmt.Sprintf("create playlist %s of %s songs", p.Title, shared.FormatDuration(length)), func(c Catalog) error {
				_, err := c.CreatePlaylistOnLength(p.Mobile, p.Title, length)
				return err
			}})
			continue
		}
		steps = append(steps, step{CreatePlaylists, fmt.Sprintf("create playlist %s from %s", p.Title, shared.Pluralize(len(p.Songs), "title")), func(c Catalog) error {
			_, err := c.CreatePlaylistOnName(p.Mobile, p.Title, p.Songs)
			return err
		}})
	}
	for _, l := range s.Listens {
		steps = append(steps, step{JoinPlaylists, fmt.Sprintf("%s joins %s", l.Mobile, l.Playlist), func(c Catalog) error {
			_, err := c.FindPlaylist(l.Mobile, l.Playlist)
			return err
		}})
	}
	for _, l := range s.Likes {
		steps = append(steps, step{LikeSongs, fmt.Sprintf("%s likes %s", l.Mobile, l.Song), func(c Catalog) error {
			_, err := c.LikeSong(l.Mobile, l.Song)
			return err
		}})
	}

	return steps
}
