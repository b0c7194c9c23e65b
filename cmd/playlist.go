package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/catalog/internal/formatter"
	"github.com/desertthunder/catalog/internal/shared"
	"github.com/desertthunder/catalog/internal/tasks"
	"github.com/urfave/cli/v3"
)

func (r *Runner) exportFormat(cmd *cli.Command) (string, error) {
	format := r.config.Export.Format
	if cmd.IsSet("format") {
		format = cmd.String("format")
	}
	if !shared.IsExportFormat(format) {
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	return format, nil
}

// PlaylistShow replays a scenario, joins the playlist as --mobile, and prints or saves it.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	mobile := cmd.String("mobile")
	title := cmd.String("title")

	format, err := r.exportFormat(cmd)
	if err != nil {
		return err
	}

	if _, err := r.replayScenario(ctx, cmd, true, r.config.Replay.RateLimit); err != nil {
		return err
	}

	if _, err := r.catalog.FindPlaylist(mobile, title); err != nil {
		return err
	}

	export, err := r.catalog.ExportPlaylist(title)
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		path, err := formatter.WriteExport(export, format, output)
		if err != nil {
			return err
		}
		r.logger.Info("playlist exported", "title", title, "path", path)
		return r.writePlain("%s Wrote %s\n", okStyle.Render("✓"), path)
	}

	data, err := formatter.Export(export, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// PlaylistExport replays a scenario and writes the selected playlists to an output directory.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	format, err := r.exportFormat(cmd)
	if err != nil {
		return err
	}

	outputDir := r.config.Export.OutputDir
	if cmd.IsSet("output-dir") {
		outputDir = cmd.String("output-dir")
	}

	exportRate := cmd.Float("export-rate")
	if exportRate < 0 {
		return fmt.Errorf("%w: --export-rate must not be negative", shared.ErrInvalidFlag)
	}

	if _, err := r.replayScenario(ctx, cmd, true, r.config.Replay.RateLimit); err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("   %s\n", update.Message)
		}
	}()

	result, err := r.engine.ExportPlaylists(ctx, progressCh, cmd.StringSlice("title"), tasks.ExportOpts{
		Format:     format,
		OutputDir:  outputDir,
		NumWorkers: cmd.Int("workers"),
		RateLimit:  exportRate,
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Directory: %s\n", result.OutputDirectory)
	r.writePlain("Exported: %d/%d playlists\n", result.SuccessfulExports, result.TotalPlaylists)
	if result.FailedExports > 0 {
		r.writePlain("%s\n", warnStyle.Render(fmt.Sprintf("Failed: %d", result.FailedExports)))
	}
	return r.writePlain("Manifest: %s\n", result.ManifestPath)
}
