package youtube

import (
	"context"
	"fmt"
)

// FetchAll walks every page of a playlist and returns its videos in playlist order.
// The first page is always requested. Only a missing nextPageToken ends the walk;
// an empty page with a token is followed. Any error discards the partial result.
func (c *Client) FetchAll(ctx context.Context, playlistID string, pageSize uint) ([]Video, error) {
	req := c.PlaylistItems().
		WithPlaylistID(playlistID).
		WithMaxResults(pageSize)

	videos := make([]Video, 0)
	cursor := ""

	for pages := 0; ; pages++ {
		if c.maxPages > 0 && pages >= c.maxPages {
			return nil, fmt.Errorf("%w: playlist %s has more than %d pages", ErrTooManyPages, playlistID, c.maxPages)
		}

		target, err := req.WithPageToken(cursor).Build()
		if err != nil {
			return nil, err
		}

		if cursor == "" {
			c.logger.Info().Str("playlist_id", playlistID).Msg("Fetching first page")
		} else {
			c.logger.Info().Str("playlist_id", playlistID).Str("page", cursor).Msg("Fetching page")
		}

		body, err := c.doRequest(ctx, target)
		if err != nil {
			return nil, err
		}

		page, err := DecodePage(body)
		if err != nil {
			return nil, err
		}

		videos = append(videos, page.Videos()...)

		next, ok := page.Cursor()
		if !ok {
			break
		}
		cursor = next
	}

	c.logger.Debug().Str("playlist_id", playlistID).Int("videos", len(videos)).Msg("Fetched playlist")
	return videos, nil
}
