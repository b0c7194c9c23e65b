// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func scenarioFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "scenario",
		Aliases: []string{"s"},
		Usage:   "Scenario file to replay (default: replay.scenario from config)",
	}
}

// configCommand handles configuration file operations.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration to --config",
				Action: r.ConfigInit,
			},
		},
	}
}

// replayCommand replays a scenario and prints a summary.
func replayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "Replay a scenario into the catalog and summarize it",
		Flags: []cli.Flag{
			scenarioFlag(),
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Steps per second (default: replay.rate_limit from config, 0 disables)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Replay,
	}
}

// popularCommand reports the most popular artist and song.
func popularCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "popular",
		Aliases: []string{"pop"},
		Usage:   "Show the most popular artist and song after a replay",
		Flags: []cli.Flag{
			scenarioFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Popular,
	}
}

// playlistCommand handles playlist operations.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Join a playlist as a listener and print or save it",
				Flags: []cli.Flag{
					scenarioFlag(),
					&cli.StringFlag{
						Name:     "mobile",
						Aliases:  []string{"m"},
						Usage:    "Listener mobile number",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Playlist title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, markdown, json (default: export.format from config)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to this file or directory instead of stdout",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "export",
				Usage: "Export playlists to files",
				Flags: []cli.Flag{
					scenarioFlag(),
					&cli.StringSliceFlag{
						Name:    "title",
						Aliases: []string{"t"},
						Usage:   "Playlist title to export (repeatable, default: all)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, csv, markdown, json (default: export.format from config)",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Output directory (default: export.output_dir from config)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent export workers",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "export-rate",
						Usage: "Playlists exported per second, 0 disables throttling",
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// likeCommand records a like after replaying a scenario.
func likeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "like",
		Usage: "Like a song as a user and print the updated counts",
		Flags: []cli.Flag{
			scenarioFlag(),
			&cli.StringFlag{
				Name:     "mobile",
				Aliases:  []string{"m"},
				Usage:    "Mobile number of the user liking the song",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "song",
				Usage:    "Song title",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Like,
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing playlists",
		Flags: []cli.Flag{
			scenarioFlag(),
			&cli.StringFlag{
				Name:    "mobile",
				Aliases: []string{"m"},
				Usage:   "Listener mobile number used to join playlists and like songs",
			},
		},
		Action: r.TUI,
	}
}
