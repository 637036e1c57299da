package config

// Config is the resolved ytsync configuration.
type Config struct {
	YouTubeAPIKey     string `mapstructure:"yt_api"`
	YouTubeOAuthToken string `mapstructure:"yt_oauth_token"`

	PlaylistFile string `mapstructure:"playlist_file"`
	ConfigDir    string `mapstructure:"config_dir"`
	APIURL       string `mapstructure:"api_url"`

	PageSize          uint    `mapstructure:"page_size"`
	MaxPages          int     `mapstructure:"max_pages"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Concurrency       int     `mapstructure:"concurrency"`

	Output string `mapstructure:"output"`
	Filter string `mapstructure:"filter"`
	Unique bool   `mapstructure:"unique"`
	Limit  int    `mapstructure:"limit"`

	Logging LoggingConfig `mapstructure:"logging"`

	// ConfigFile is the file the configuration was read from, or the default
	// location when no file exists.
	ConfigFile string `mapstructure:"-"`
	// FileFound reports whether ConfigFile was actually read.
	FileFound bool `mapstructure:"-"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
