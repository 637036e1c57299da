// Package oauth stores delegated OAuth 2.0 access tokens for ytsync.
//
// Obtaining a token is out of scope: a token minted elsewhere is saved with
// TokenStorage.Save and picked up on later runs as the delegated credential.
package oauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrEmptyToken    = errors.New("token has no access token")
)

type Token struct {
	AccessToken  string `json:"access_token"`            // #nosec G117 - JSON field for OAuth token, not an exposed secret
	RefreshToken string `json:"refresh_token,omitempty"` // #nosec G117 - JSON field for OAuth token, not an exposed secret
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

type TokenStorage struct {
	dir string
}

func NewTokenStorage(dir string) *TokenStorage {
	return &TokenStorage{dir: dir}
}

// Path returns the file a provider's token is stored in.
func (s *TokenStorage) Path(provider string) string {
	cleanProvider := filepath.Base(provider)
	return filepath.Join(s.dir, cleanProvider+"_token.json")
}

func (s *TokenStorage) Save(provider string, token *Token) error {
	if token == nil || strings.TrimSpace(token.AccessToken) == "" {
		return ErrEmptyToken
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	return os.WriteFile(s.Path(provider), data, 0600)
}

func (s *TokenStorage) Load(provider string) (*Token, error) {
	data, err := os.ReadFile(s.Path(provider)) // #nosec G304 -- provider is sanitized
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}

	if token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return &token, nil
}
