package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/catalog/internal/formatter"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
	"github.com/urfave/cli/v3"
)

// replaySummary is the JSON shape of a [tasks.ReplayResult].
type replaySummary struct {
	Scenario   string            `json:"scenario"`
	TotalSteps int               `json:"total_steps"`
	Applied    int               `json:"applied"`
	Failed     []failedStep      `json:"failed"`
	Popularity models.Popularity `json:"popularity"`
}

type failedStep struct {
	Phase string `json:"phase"`
	Step  string `json:"step"`
	Error string `json:"error"`
}

func newReplaySummary(result *tasks.ReplayResult) replaySummary {
	summary := replaySummary{
		Scenario:   result.Scenario,
		TotalSteps: result.TotalSteps,
		Applied:    result.Applied,
		Failed:     make([]failedStep, 0, len(result.Failed)),
		Popularity: result.Popularity,
	}
	for _, f := range result.Failed {
		summary.Failed = append(summary.Failed, failedStep{Phase: f.Phase.String(), Step: f.Description, Error: f.Err.Error()})
	}
	return summary
}

// replayScenario loads the scenario named by --scenario (or the config default) and replays it into the catalog.
//
// Steps are throttled to rate per second. Progress is written to the output unless quiet is set.
func (r *Runner) replayScenario(ctx context.Context, cmd *cli.Command, quiet bool, rate float64) (*tasks.ReplayResult, error) {
	path := cmd.String("scenario")
	if path == "" {
		path = r.config.Replay.Scenario
	}
	if path == "" {
		return nil, fmt.Errorf("%w: --scenario", shared.ErrMissingArgument)
	}

	scenario, err := tasks.LoadScenario(path)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loaded scenario", "path", path, "steps", scenario.StepCount())

	if quiet {
		return r.engine.Replay(ctx, nil, scenario, tasks.ReplayOpts{RateLimit: rate})
	}

	progressCh := make(chan tasks.ProgressUpdate, scenario.StepCount()+1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		current := tasks.Phase(-1)
		for update := range progressCh {
			if update.Phase != current && update.Phase != tasks.Complete {
				current = update.Phase
				r.writePlain("\n%s\n", headerStyle.Render(update.Phase.String()))
			}
			switch {
			case update.Phase == tasks.Complete:
				r.writePlain("\n%s\n", update.Message)
			case update.Err != nil:
				r.writePlain("  %s %s\n", warnStyle.Render("✗"), update.Message)
			default:
				r.writePlain("  %s %s\n", okStyle.Render("✓"), update.Message)
			}
		}
	}()

	result, err := r.engine.Replay(ctx, progressCh, scenario, tasks.ReplayOpts{RateLimit: rate})
	close(progressCh)
	<-done

	return result, err
}

// Replay replays a scenario and prints a summary of applied and failed steps.
func (r *Runner) Replay(ctx context.Context, cmd *cli.Command) error {
	asJSON := cmd.Bool("json")

	rate := r.config.Replay.RateLimit
	if cmd.IsSet("rate") {
		rate = cmd.Float("rate")
	}
	if rate < 0 {
		return fmt.Errorf("%w: --rate must not be negative", shared.ErrInvalidFlag)
	}

	result, err := r.replayScenario(ctx, cmd, asJSON, rate)
	if err != nil {
		return err
	}

	if asJSON {
		return r.writeJSON(newReplaySummary(result), cmd.Bool("pretty"))
	}

	r.writePlain("\n")
	r.writePlainHeader("Replay Complete!")
	r.writePlain("Scenario: %s\n", result.Scenario)
	r.writePlain("Applied: %d/%d steps\n", result.Applied, result.TotalSteps)
	r.writePlain("Users: %d  Artists: %d  Albums: %d  Songs: %d  Playlists: %d\n",
		len(r.catalog.Users()), len(r.catalog.Artists()), len(r.catalog.Albums()),
		len(r.catalog.Songs()), len(r.catalog.Playlists()),
	)

	if len(result.Failed) > 0 {
		r.writePlain("\n%s\n", warnStyle.Render(fmt.Sprintf("Failed %s:", shared.Pluralize(len(result.Failed), "step"))))
		for _, f := range result.Failed {
			r.writePlain("  - [%s] %v\n", f.Phase, f.Err)
		}
	}

	r.writePlain("\n")
	return r.writePlain("%s", formatter.PopularityReport(result.Popularity))
}

// Popular replays a scenario and reports the most popular artist and song.
func (r *Runner) Popular(ctx context.Context, cmd *cli.Command) error {
	result, err := r.replayScenario(ctx, cmd, true, r.config.Replay.RateLimit)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result.Popularity, false)
	}
	return r.writePlain("%s", formatter.PopularityReport(result.Popularity))
}
