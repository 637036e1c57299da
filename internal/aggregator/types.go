// Package aggregator combines the videos of several playlists into one list.
//
// This package enables ytsync to:
// - Merge playlists in the order they were added, keeping page order inside each
// - Drop videos that appear in more than one playlist
// - Cap the merged list
package aggregator

import "github.com/gauthierbraillon/ytsync/internal/youtube"

// FeedItem is a video together with the playlist it came from.
type FeedItem struct {
	youtube.Video `yaml:",inline"`
	Playlist      string `json:"playlist" yaml:"playlist"`
}

// FeedOptions configures feed retrieval.
type FeedOptions struct {
	// Limit caps the number of items; zero means no limit.
	Limit int
	// Unique keeps only the first item for every video URL.
	Unique bool
	// Match, when set, keeps only the items it accepts. Limit counts kept items.
	Match func(FeedItem) (bool, error)
}
