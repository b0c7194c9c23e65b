// package formatter renders playlists and popularity reports to CSV, Markdown, plain text and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// ExportToCSV converts a PlaylistExport to CSV format with columns: Title, Artist, Album, Length, Likes
func ExportToCSV(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Album", "Length", "Likes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range export.Tracks {
		record := []string{
			track.Title,
			track.Artist,
			track.Album,
			strconv.Itoa(track.Length),
			strconv.Itoa(track.Likes),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a PlaylistExport to Markdown format
func ExportToMarkdown(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	p := export.Playlist

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
	buf.WriteString(fmt.Sprintf("**Creator**: %s (%s)\n", p.Creator, p.CreatorMobile))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n", p.SongCount))
	buf.WriteString(fmt.Sprintf("**Length**: %s\n", shared.FormatDuration(p.TotalLength)))
	buf.WriteString(fmt.Sprintf("**Listeners**: %d\n\n", p.ListenerCount))

	buf.WriteString("## Songs\n\n")
	for i, track := range export.Tracks {
		albumPart := ""
		if track.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", track.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s] ♥ %d\n", i+1, track.Artist, track.Title, albumPart, shared.FormatDuration(track.Length), track.Likes))
	}

	if len(export.Listeners) > 0 {
		buf.WriteString("\n## Listeners\n\n")
		for _, mobile := range export.Listeners {
			buf.WriteString(fmt.Sprintf("- %s\n", mobile))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistExport to plain text format
func ExportToText(export *models.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	p := export.Playlist

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Title))
	buf.WriteString(fmt.Sprintf("Creator: %s\n", p.Creator))
	buf.WriteString(fmt.Sprintf("Songs: %d (%s)\n", p.SongCount, shared.FormatDuration(p.TotalLength)))
	buf.WriteString(fmt.Sprintf("Listeners: %d\n\n", p.ListenerCount))

	for i, track := range export.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.Artist, track.Title))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a PlaylistExport to indented JSON
func ExportToJSON(export *models.PlaylistExport) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// Export renders export in the named format (text, csv, markdown, json).
func Export(export *models.PlaylistExport, format string) ([]byte, error) {
	switch format {
	case "csv":
		return ExportToCSV(export)
	case "markdown":
		return ExportToMarkdown(export)
	case "json":
		return ExportToJSON(export)
	case "text", "":
		return ExportToText(export)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// Extension returns the file extension used for format.
func Extension(format string) string {
	switch format {
	case "csv":
		return ".csv"
	case "markdown":
		return ".md"
	case "json":
		return ".json"
	default:
		return ".txt"
	}
}

// PopularityReport renders the most liked artist and song as plain text.
func PopularityReport(p models.Popularity) []byte {
	var buf bytes.Buffer

	if p.HasArtist {
		buf.WriteString(fmt.Sprintf("Most popular artist: %s (%s)\n", p.Artist, shared.Pluralize(p.ArtistLikes, "like")))
	} else {
		buf.WriteString("Most popular artist: none\n")
	}

	if p.HasSong {
		buf.WriteString(fmt.Sprintf("Most popular song: %s (%s)\n", p.Song, shared.Pluralize(p.SongLikes, "like")))
	} else {
		buf.WriteString("Most popular song: none\n")
	}

	return buf.Bytes()
}

// FileName derives a filesystem-safe base name from a playlist title.
func FileName(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "playlist"
	}
	return b.String()
}

// WriteExport renders export in format and writes it to path.
//
// Defaults to {dir}/{title}{ext} when path is a directory or empty.
func WriteExport(export *models.PlaylistExport, format, path string) (string, error) {
	data, err := Export(export, format)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = FileName(export.Playlist.Title) + Extension(format)
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName(export.Playlist.Title)+Extension(format))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s export: %w", format, err)
	}

	return path, nil
}
