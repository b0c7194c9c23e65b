// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// SampleScenario is a small catalog used across package tests.
//
// Expected outcome: Jackson is the most popular artist (3 likes) and "Beat It" the most
// popular song (2 likes). One like references a missing song.
const SampleScenario = `name = "sample"

[[users]]
name = "Alice"
mobile = "555-0100"

[[users]]
name = "Bob"
mobile = "555-0101"

[[artists]]
name = "Prince"

[[albums]]
title = "Thriller"
artist = "Jackson"

[[albums]]
title = "Purple Rain"
artist = "Prince"

[[songs]]
title = "Beat It"
album = "Thriller"
length = 258

[[songs]]
title = "Billie Jean"
album = "Thriller"
length = 294

[[songs]]
title = "When Doves Cry"
album = "Purple Rain"
length = 354

[[playlists]]
mobile = "555-0100"
title = "Four Eighteen"
length = 258

[[playlists]]
mobile = "555-0101"
title = "Favourites"
songs = ["Billie Jean", "When Doves Cry"]

[[listens]]
mobile = "555-0101"
playlist = "Four Eighteen"

[[likes]]
mobile = "555-0100"
song = "Beat It"

[[likes]]
mobile = "555-0101"
song = "Beat It"

[[likes]]
mobile = "555-0101"
song = "Billie Jean"

[[likes]]
mobile = "555-0100"
song = "Smooth Criminal"
`

// WriteScenario writes content to a scenario.toml in a fresh temp directory and returns its path.
func WriteScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
