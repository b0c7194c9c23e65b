package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/catalog/internal/formatter"
	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
	"golang.org/x/time/rate"
)

// ExportOpts contains configuration for bulk playlist exports.
type ExportOpts struct {
	Format     string  // Export format: text, csv, markdown, json
	OutputDir  string  // Base output directory (default: catalog_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 4)
	RateLimit  float64 // Playlists per second, 0 disables throttling
}

// PlaylistExportResult reports the outcome for one playlist.
type PlaylistExportResult struct {
	Sequence int // Playlist creation position, 0 when the title matched nothing
	Title    string
	Success  bool
	Files    []string
	Error    error
}

// ExportResult summarizes a bulk export.
type ExportResult struct {
	TotalPlaylists    int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []PlaylistExportResult
}

const manifestFile = "export_manifest.json"

type exportJob struct {
	step   int
	path   string
	export *models.PlaylistExport
}

// ExportPlaylists writes every playlist titled in titles (every playlist when titles is empty) to opts.OutputDir.
//
// Playlists sharing a title are all exported, each to its own file. Selection reads one catalog snapshot on the
// calling goroutine; rendering and writing run on a worker pool. A manifest summarizing every export is written last.
func (e *Engine) ExportPlaylists(ctx context.Context, prog chan<- ProgressUpdate, titles []string, opts ExportOpts) (*ExportResult, error) {
	if opts.Format == "" {
		opts.Format = "text"
	}
	if !shared.IsExportFormat(opts.Format) {
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, opts.Format)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("catalog_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}

	selected, missing := selectExports(e.catalog.PlaylistExports(), titles)
	total := len(selected) + len(missing)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ExportResult{
		TotalPlaylists:  total,
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, total),
	}

	completed := 0
	record := func(res PlaylistExportResult) {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, total, res.Title, len(res.Files)))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, total, res.Title, res.Error))
			e.logger.Warn("playlist export failed", "playlist", res.Title, "error", res.Error)
		}
	}

	for _, title := range missing {
		record(PlaylistExportResult{Title: title, Error: fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, title)})
	}

	names := newFileNamer(manifestFile)
	jobs := make(chan exportJob, len(selected))
	for i, export := range selected {
		name := names.next(export.Playlist.Title, export.Playlist.Sequence, formatter.Extension(opts.Format))
		jobs <- exportJob{step: len(missing) + i + 1, path: filepath.Join(opts.OutputDir, name), export: export}
	}
	close(jobs)

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	results := make(chan PlaylistExportResult, len(selected))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, limiter, jobs, results, prog, opts.Format, total)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		record(res)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export cancelled: %w", err)
	}

	manifestPath := filepath.Join(opts.OutputDir, manifestFile)
	if err := formatter.WriteManifest(buildManifest(result, opts.Format), manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	e.logger.Info("export complete", "dir", opts.OutputDir, "succeeded", result.SuccessfulExports, "failed", result.FailedExports)
	return result, nil
}

// selectExports picks, in creation order, every playlist whose title is in titles. An empty titles selects all.
// Requested titles that match no playlist are returned once each in missing.
func selectExports(all []*models.PlaylistExport, titles []string) (selected []*models.PlaylistExport, missing []string) {
	if len(titles) == 0 {
		return all, nil
	}

	found := make(map[string]bool, len(titles))
	for _, t := range titles {
		found[t] = false
	}
	for _, export := range all {
		if _, ok := found[export.Playlist.Title]; ok {
			found[export.Playlist.Title] = true
			selected = append(selected, export)
		}
	}

	for _, t := range titles {
		if !found[t] {
			missing = append(missing, t)
			found[t] = true
		}
	}
	return selected, missing
}

// fileNamer hands out file names that are unique within one export directory.
type fileNamer struct {
	used map[string]bool
}

func newFileNamer(reserved ...string) *fileNamer {
	n := &fileNamer{used: make(map[string]bool)}
	for _, name := range reserved {
		n.used[name] = true
	}
	return n
}

// next returns {title}{ext}, falling back to {title}_{sequence}{ext} and then a numeric suffix on collision.
func (n *fileNamer) next(title string, sequence int, ext string) string {
	base := formatter.FileName(title)
	name := base + ext
	for i := 1; n.used[name]; i++ {
		if i == 1 {
			name = fmt.Sprintf("%s_%d%s", base, sequence, ext)
		} else {
			name = fmt.Sprintf("%s_%d_%d%s", base, sequence, i, ext)
		}
	}
	n.used[name] = true
	return name
}

// exportWorker renders and writes playlists from the jobs channel.
func (e *Engine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan exportJob,
	results chan<- PlaylistExportResult,
	prog chan<- ProgressUpdate,
	format string,
	total int,
) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
		}

		p := job.export.Playlist
		e.sendProgress(prog, exportingPlaylistUpdate(job.step, total, p.Title))

		written, err := formatter.WriteExport(job.export, format, job.path)
		if err != nil {
			results <- PlaylistExportResult{Sequence: p.Sequence, Title: p.Title, Error: fmt.Errorf("%s export failed: %w", format, err)}
			continue
		}
		results <- PlaylistExportResult{Sequence: p.Sequence, Title: p.Title, Success: true, Files: []string{written}}
	}
}

func buildManifest(result *ExportResult, format string) *formatter.Manifest {
	m := &formatter.Manifest{
		ExportedAt: time.Now(),
		Format:     format,
		Total:      result.TotalPlaylists,
		Succeeded:  result.SuccessfulExports,
		Failed:     result.FailedExports,
		Playlists:  make([]formatter.ManifestEntry, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		entry := formatter.ManifestEntry{Sequence: r.Sequence, Title: r.Title, Success: r.Success, Files: r.Files}
		if r.Error != nil {
			entry.Error = r.Error.Error()
		}
		m.Playlists = append(m.Playlists, entry)
	}
	return m
}
