package aggregator

import "github.com/gauthierbraillon/ytsync/internal/youtube"

// Aggregator collects videos from multiple playlists.
type Aggregator struct {
	items []FeedItem
}

// New creates a new Aggregator instance.
func New() *Aggregator {
	return &Aggregator{
		items: make([]FeedItem, 0),
	}
}

// Add appends the videos of a playlist, preserving their order.
func (a *Aggregator) Add(playlistID string, videos []youtube.Video) {
	for _, v := range videos {
		a.items = append(a.items, FeedItem{Video: v, Playlist: playlistID})
	}
}

// GetFeed returns aggregated feed items based on options.
// An error from opts.Match aborts the feed.
func (a *Aggregator) GetFeed(opts FeedOptions) ([]FeedItem, error) {
	seen := make(map[string]bool)
	feed := make([]FeedItem, 0, len(a.items))

	for _, item := range a.items {
		if opts.Unique && seen[item.URL] {
			continue
		}
		if opts.Match != nil {
			ok, err := opts.Match(item)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		seen[item.URL] = true

		feed = append(feed, item)
		if opts.Limit > 0 && len(feed) == opts.Limit {
			break
		}
	}

	return feed, nil
}

// Len returns the number of collected items.
func (a *Aggregator) Len() int {
	return len(a.items)
}
