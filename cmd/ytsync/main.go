// Package main provides the ytsync CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/ytsync/internal/config"
	"github.com/gauthierbraillon/ytsync/internal/playlists"
	"github.com/gauthierbraillon/ytsync/pkg/oauth"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app holds state shared by the subcommands once configuration is loaded.
type app struct {
	configFile string
	cfg        *config.Config
	logger     zerolog.Logger
}

// newRootCmd creates the root command for ytsync CLI.
func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          "ytsync",
		Short:        "Synchronize YouTube playlists",
		Long:         "ytsync lists every video of one or more YouTube playlists using the YouTube Data API.",
		Version:      buildVersion(),
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate("ytsync version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (default is ~/.config/ytsync/ytsync.toml)")
	pf.String("yt-api", "", "YouTube Data API key")
	pf.String("yt-oauth-token", "", "YouTube OAuth 2.0 access token")
	pf.StringP("playlist-file", "p", "", "file listing the playlists to synchronize")
	pf.Uint("page-size", config.MaxPageSize, "videos requested per page (1-50, 0 lets YouTube decide)")
	pf.Int("max-pages", 0, "give up on a playlist after this many pages (0 means no limit)")
	pf.Float64("requests-per-second", 0, "pace API requests (0 means no pacing)")
	pf.Int("concurrency", 4, "playlists fetched at the same time")
	pf.StringP("output", "o", "table", "output format: table, text, json or yaml")
	pf.String("filter", "", `expression selecting videos, e.g. mentions(title, "live")`)
	pf.Bool("unique", false, "drop videos that appear in more than one playlist")
	pf.Int("limit", 0, "maximum number of videos to display (0 means all)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")

	rootCmd.AddCommand(newPlaylistCmd(a))
	rootCmd.AddCommand(newSyncCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTokenCmd(a))

	return rootCmd
}

// load reads the configuration and sets up the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())

	if cfg.FileFound {
		a.logger.Debug().Str("file", cfg.ConfigFile).Msg("Loaded configuration")
	} else {
		a.logger.Debug().Str("file", cfg.ConfigFile).Msg("No configuration file, using defaults")
	}
	return nil
}

func (a *app) tokenStorage() *oauth.TokenStorage {
	return oauth.NewTokenStorage(a.cfg.ConfigDir)
}

// newPlaylistCmd creates the playlist subcommand.
func newPlaylistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist <playlist-id>...",
		Short: "List the videos of the given playlists",
		Long:  "Fetch every page of each playlist and display the videos in playlist order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			entries := make([]playlists.Entry, 0, len(args))
			for _, id := range args {
				entries = append(entries, playlists.Entry{ID: id})
			}

			return a.run(cmd, entries)
		},
	}

	return cmd
}

// newSyncCmd creates the sync subcommand.
func newSyncCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "List the videos of every playlist in the playlist file",
		Long: `Read the playlist file (one playlist id per line, optionally followed by a label)
and display the videos of all listed playlists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			// Fail on a missing credential before touching the playlist file.
			if _, err := a.cfg.Credential(a.tokenStorage()); err != nil {
				return err
			}

			entries, err := playlists.Load(a.cfg.PlaylistFile)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no playlists listed in %s", a.cfg.PlaylistFile)
			}

			return a.run(cmd, entries)
		},
	}

	return cmd
}

// newConfigCmd creates the config subcommand.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long:  "Show where ytsync reads its configuration from and which credential it will use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			configFile := a.cfg.ConfigFile
			if !a.cfg.FileFound {
				configFile += " (not found)"
			}

			auth := "none"
			cred, err := a.cfg.Credential(a.tokenStorage())
			switch {
			case err == nil:
				auth = string(cred.Mode)
			case !errors.Is(err, config.ErrNoCredential):
				return err
			}

			fmt.Fprintf(out, "Config file: %s\n", configFile)
			fmt.Fprintf(out, "Config directory: %s\n", a.cfg.ConfigDir)
			fmt.Fprintf(out, "Playlist file: %s\n", a.cfg.PlaylistFile)
			fmt.Fprintf(out, "Authentication: %s\n", auth)
			fmt.Fprintf(out, "Page size: %d\n", a.cfg.PageSize)
			fmt.Fprintf(out, "Output: %s\n", a.cfg.Output)
			return nil
		},
	}

	return cmd
}

// newTokenCmd creates the token subcommand.
func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored OAuth access token",
	}

	setCmd := &cobra.Command{
		Use:   "set <access-token>",
		Short: "Store an OAuth access token used when no key or token is configured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			storage := a.tokenStorage()
			token := &oauth.Token{AccessToken: args[0], TokenType: "Bearer"}
			if err := storage.Save("youtube", token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to: %s\n", storage.Path("youtube"))
			return nil
		},
	}

	cmd.AddCommand(setCmd)
	return cmd
}
