package main

import (
	"context"

	"github.com/desertthunder/catalog/internal/shared"
	"github.com/urfave/cli/v3"
)

// likeSummary reports the counts after a like.
type likeSummary struct {
	Mobile      string `json:"mobile"`
	Song        string `json:"song"`
	SongLikes   int    `json:"song_likes"`
	Artist      string `json:"artist"`
	ArtistLikes int    `json:"artist_likes"`
}

// Like replays a scenario and likes --song as --mobile.
//
// Liking a song twice as the same user leaves both counts unchanged.
func (r *Runner) Like(ctx context.Context, cmd *cli.Command) error {
	mobile := cmd.String("mobile")
	title := cmd.String("song")

	if _, err := r.replayScenario(ctx, cmd, true, r.config.Replay.RateLimit); err != nil {
		return err
	}

	song, err := r.catalog.LikeSong(mobile, title)
	if err != nil {
		return err
	}

	summary := likeSummary{
		Mobile:    mobile,
		Song:      song.Title(),
		SongLikes: song.Likes(),
		Artist:    song.ArtistName(),
	}
	if artist, ok := r.catalog.GetArtist(song.ArtistName()); ok {
		summary.ArtistLikes = artist.Likes()
	}

	if cmd.Bool("json") {
		return r.writeJSON(summary, false)
	}

	r.writePlain("%s %s likes %s\n", okStyle.Render("♥"), mobile, summary.Song)
	r.writePlain("%s: %s\n", summary.Song, shared.Pluralize(summary.SongLikes, "like"))
	return r.writePlain("%s: %s\n", summary.Artist, shared.Pluralize(summary.ArtistLikes, "like"))
}
