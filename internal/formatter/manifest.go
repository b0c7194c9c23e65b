package formatter

import (
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/catalog/internal/shared"
)

// ManifestEntry describes one playlist in a bulk export.
type ManifestEntry struct {
	Sequence int      `json:"sequence,omitempty"`
	Title    string   `json:"title"`
	Success  bool     `json:"success"`
	Files    []string `json:"files,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Manifest summarizes a bulk export.
type Manifest struct {
	ExportedAt time.Time       `json:"exported_at"`
	Format     string          `json:"format"`
	Total      int             `json:"total"`
	Succeeded  int             `json:"succeeded"`
	Failed     int             `json:"failed"`
	Playlists  []ManifestEntry `json:"playlists"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(m *Manifest, path string) error {
	data, err := shared.MarshalJSON(m, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
