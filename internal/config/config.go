// Package config loads ytsync settings.
//
// Values are merged with the following precedence, highest first:
// explicitly set command line flags, YTSYNC_* environment variables
// (a .env file in the working directory is read into the environment first),
// the TOML configuration file, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable ytsync reads.
	EnvPrefix = "YTSYNC"
	// MaxPageSize is the largest maxResults the playlistItems endpoint accepts.
	MaxPageSize = 50
)

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"yt-api":              "yt_api",
	"yt-oauth-token":      "yt_oauth_token",
	"playlist-file":       "playlist_file",
	"page-size":           "page_size",
	"max-pages":           "max_pages",
	"requests-per-second": "requests_per_second",
	"concurrency":         "concurrency",
	"output":              "output",
	"filter":              "filter",
	"unique":              "unique",
	"limit":               "limit",
	"log-level":           "logging.level",
	"log-format":          "logging.format",
}

// DefaultConfigDir returns the configuration directory path.
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ytsync")
}

// DefaultConfigFile returns the configuration file used when none is given.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir(), "ytsync.toml")
}

// Load reads the configuration file at configPath (DefaultConfigFile when empty),
// applies environment overrides and the changed flags, and validates the result.
// A missing configuration file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = DefaultConfigFile()
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config %s: %w", configPath, err)
		}
		fileFound = false
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.ConfigFile = configPath
	cfg.FileFound = fileFound

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone and a missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	dir := DefaultConfigDir()

	v.SetDefault("yt_api", "")
	v.SetDefault("yt_oauth_token", "")
	v.SetDefault("config_dir", dir)
	v.SetDefault("playlist_file", filepath.Join(dir, "playlists"))
	v.SetDefault("api_url", "")

	// Fetch defaults
	v.SetDefault("page_size", MaxPageSize)
	v.SetDefault("max_pages", 0)
	v.SetDefault("requests_per_second", 0)
	v.SetDefault("concurrency", 4)

	// Output defaults
	v.SetDefault("output", "table")
	v.SetDefault("filter", "")
	v.SetDefault("unique", false)
	v.SetDefault("limit", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.PageSize > MaxPageSize {
		return fmt.Errorf("page_size must be between 0 and %d, got %d", MaxPageSize, cfg.PageSize)
	}

	if cfg.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative")
	}

	if cfg.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}

	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if cfg.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	validOutputs := map[string]bool{
		"table": true,
		"text":  true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid output format: %s", cfg.Output)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
