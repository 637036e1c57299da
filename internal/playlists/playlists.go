// Package playlists reads the list of playlists ytsync synchronizes.
//
// The file holds one playlist per line: the playlist id, optionally followed
// by whitespace and a label. Blank lines and lines starting with # are ignored.
package playlists

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrNoPlaylistFile is returned when the playlist file does not exist.
var ErrNoPlaylistFile = errors.New("playlist file not found")

// Entry is one playlist to synchronize.
type Entry struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Name returns the label, or the id when no label was given.
func (e Entry) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}

// Load reads the playlist file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the user's own configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoPlaylistFile, path)
		}
		return nil, fmt.Errorf("failed to open playlist file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse reads playlist entries from r. Repeated ids keep their first occurrence.
func Parse(r io.Reader) ([]Entry, error) {
	entries := make([]Entry, 0)
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, label := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			id, label = line[:i], strings.TrimSpace(line[i:])
		}

		if seen[id] {
			continue
		}
		seen[id] = true

		entries = append(entries, Entry{ID: id, Label: label})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlists: %w", err)
	}

	return entries, nil
}
