// Package youtube tests document the expected behavior of the YouTube client.
//
// Test requirements (this file serves as documentation):
// - A new client starts unauthenticated
// - An API key or an access token promotes it to an authenticated Client
// - Empty credentials are rejected
// - A Client without a credential cannot build requests
package youtube

import (
	"errors"
	"strings"
	"testing"
)

// TestNewClient documents client creation requirements:
// - Returns an unauthenticated client ready to accept a credential
func TestNewClient(t *testing.T) {
	client := NewClient()

	if client == nil {
		t.Fatal("client should not be nil")
	}
}

// TestWithAPIKey documents API key authorization:
// - The credential is sent as the "key" query parameter
func TestWithAPIKey(t *testing.T) {
	client, err := NewClient().WithAPIKey("my-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auth := client.Authorization()
	if auth.Param() != "key" {
		t.Errorf("expected param key, got %q", auth.Param())
	}
	if auth.Value() != "my-key" {
		t.Errorf("expected value my-key, got %q", auth.Value())
	}
}

// TestWithDelegatedToken documents OAuth token authorization:
// - The credential is sent as the "access_token" query parameter
func TestWithDelegatedToken(t *testing.T) {
	client, err := NewClient().WithDelegatedToken("ya29.token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	auth := client.Authorization()
	if auth.Param() != "access_token" {
		t.Errorf("expected param access_token, got %q", auth.Param())
	}
	if _, ok := auth.(AccessToken); !ok {
		t.Errorf("expected AccessToken authorization, got %T", auth)
	}
}

func TestEmptyCredential_IsRejected(t *testing.T) {
	if _, err := NewClient().WithAPIKey(""); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("empty API key should fail with ErrInvalidCredential, got %v", err)
	}
	if _, err := NewClient().WithDelegatedToken(""); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("empty token should fail with ErrInvalidCredential, got %v", err)
	}
}

// TestAuthentication_ProducesIndependentClients verifies that promoting the same
// unauthenticated client twice yields two clients with their own credential.
func TestAuthentication_ProducesIndependentClients(t *testing.T) {
	base := NewClient(WithBaseURL("https://example.test"))

	keyClient, _ := base.WithAPIKey("k")
	tokenClient, _ := base.WithDelegatedToken("t")

	keyURL, _ := keyClient.PlaylistItems().WithPlaylistID("PL").Build()
	tokenURL, _ := tokenClient.PlaylistItems().WithPlaylistID("PL").Build()

	if !strings.HasSuffix(keyURL, "&key=k") {
		t.Errorf("key client should send its key, got %s", keyURL)
	}
	if !strings.HasSuffix(tokenURL, "&access_token=t") {
		t.Errorf("token client should send its token, got %s", tokenURL)
	}
}

// TestZeroClient_IsNotAuthenticated verifies the runtime guard behind the
// Unauthenticated type: a Client that never received a credential refuses to build.
func TestZeroClient_IsNotAuthenticated(t *testing.T) {
	var client Client

	_, err := client.PlaylistItems().WithPlaylistID("PL123").Build()

	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}
