package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gauthierbraillon/ytsync/internal/aggregator"
	"github.com/gauthierbraillon/ytsync/internal/display"
	"github.com/gauthierbraillon/ytsync/internal/filter"
	"github.com/gauthierbraillon/ytsync/internal/playlists"
	"github.com/gauthierbraillon/ytsync/internal/youtube"
)

// run fetches entries, merges, filters and renders them.
func (a *app) run(cmd *cobra.Command, entries []playlists.Entry) error {
	// Compile the filter first so a typo fails before any request is made.
	f, err := filter.Compile(a.cfg.Filter)
	if err != nil {
		return err
	}

	client, err := a.newClient()
	if err != nil {
		return err
	}

	agg, err := fetchPlaylists(cmd.Context(), client, entries, a.cfg.PageSize, a.cfg.Concurrency)
	if err != nil {
		return err
	}

	items, err := agg.GetFeed(aggregator.FeedOptions{
		Limit:  a.cfg.Limit,
		Unique: a.cfg.Unique,
		Match:  f.Match,
	})
	if err != nil {
		return err
	}

	a.logger.Info().Int("playlists", len(entries)).Int("collected", agg.Len()).Int("shown", len(items)).Msg("Synchronized")

	return display.Render(cmd.OutOrStdout(), items, a.cfg.Output)
}

// newClient authenticates a YouTube client with the configured credential.
func (a *app) newClient() (*youtube.Client, error) {
	cred, err := a.cfg.Credential(a.tokenStorage())
	if err != nil {
		return nil, err
	}

	opts := []youtube.ClientOption{
		youtube.WithLogger(a.logger),
		youtube.WithMaxPages(a.cfg.MaxPages),
		youtube.WithRateLimit(a.cfg.RequestsPerSecond, 1),
	}
	if a.cfg.APIURL != "" {
		opts = append(opts, youtube.WithBaseURL(a.cfg.APIURL))
	}

	base := youtube.NewClient(opts...)
	a.logger.Debug().Str("auth", string(cred.Mode)).Msg("Authenticating YouTube client")

	if cred.Delegated() {
		return base.WithDelegatedToken(cred.Value)
	}
	return base.WithAPIKey(cred.Value)
}

// fetchPlaylists fetches up to concurrency playlists at a time. Pages of a single
// playlist are always fetched in sequence. Results are merged in entry order and
// the first error cancels the remaining fetches.
func fetchPlaylists(ctx context.Context, client *youtube.Client, entries []playlists.Entry, pageSize uint, concurrency int) (*aggregator.Aggregator, error) {
	results := make([][]youtube.Video, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			videos, err := client.FetchAll(ctx, entry.ID, pageSize)
			if err != nil {
				return fmt.Errorf("playlist %s: %w", entry.Name(), err)
			}
			results[i] = videos
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := aggregator.New()
	for i, entry := range entries {
		agg.Add(entry.ID, results[i])
	}
	return agg, nil
}
