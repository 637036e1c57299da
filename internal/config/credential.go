package config

import (
	"errors"
	"fmt"

	"github.com/gauthierbraillon/ytsync/pkg/oauth"
)

// AuthMode names where the YouTube credential came from.
type AuthMode string

const (
	AuthAPIKey      AuthMode = "api_key"
	AuthOAuthToken  AuthMode = "oauth_token"
	AuthStoredToken AuthMode = "stored_token"
)

// ErrNoCredential is returned when neither an API key nor an access token is available.
var ErrNoCredential = errors.New("no YouTube credential configured")

// Credential is the single credential handed to the YouTube client.
type Credential struct {
	Mode  AuthMode
	Value string
}

// Delegated reports whether the credential is an OAuth access token.
func (c Credential) Delegated() bool {
	return c.Mode != AuthAPIKey
}

// TokenSource loads a previously stored access token.
type TokenSource interface {
	Load(provider string) (*oauth.Token, error)
}

// Credential picks the credential to use: the API key, then the OAuth token,
// then a token stored in tokens (which may be nil).
func (c *Config) Credential(tokens TokenSource) (Credential, error) {
	if c.YouTubeAPIKey != "" {
		return Credential{Mode: AuthAPIKey, Value: c.YouTubeAPIKey}, nil
	}
	if c.YouTubeOAuthToken != "" {
		return Credential{Mode: AuthOAuthToken, Value: c.YouTubeOAuthToken}, nil
	}

	if tokens != nil {
		token, err := tokens.Load("youtube")
		if err == nil {
			return Credential{Mode: AuthStoredToken, Value: token.AccessToken}, nil
		}
		if !errors.Is(err, oauth.ErrTokenNotFound) && !errors.Is(err, oauth.ErrEmptyToken) {
			return Credential{}, fmt.Errorf("failed to load stored token: %w", err)
		}
	}

	return Credential{}, fmt.Errorf("%w: set a YouTube API key or an OAuth 2.0 token in %s, "+
		"with the --yt-api or --yt-oauth-token flags, or with %s_YT_API / %s_YT_OAUTH_TOKEN",
		ErrNoCredential, c.ConfigFile, EnvPrefix, EnvPrefix)
}
