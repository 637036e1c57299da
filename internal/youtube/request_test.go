package youtube

import (
	"errors"
	"strings"
	"testing"
)

func newKeyClient(t *testing.T, key string) *Client {
	t.Helper()
	client, err := NewClient().WithAPIKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestBuild_FullRequest(t *testing.T) {
	client := newKeyClient(t, "KEY")

	got, err := client.PlaylistItems().
		WithPlaylistID("PL1").
		WithMaxResults(50).
		WithPageToken("CAUQAA").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://youtube.googleapis.com/youtube/v3/playlistItems?part=snippet&playlistId=PL1&maxResults=50&pageToken=CAUQAA&key=KEY"
	if got != want {
		t.Errorf("unexpected request URL\n got: %s\nwant: %s", got, want)
	}
}

func TestBuild_OmitsUnsetParameters(t *testing.T) {
	client := newKeyClient(t, "KEY")

	got, err := client.PlaylistItems().WithPlaylistID("PL1").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, param := range []string{"maxResults", "pageToken"} {
		if strings.Contains(got, param) {
			t.Errorf("%s should be omitted when unset, got %s", param, got)
		}
	}
}

func TestBuild_APIKeyIsLastParameter(t *testing.T) {
	for _, key := range []string{"k", "AIzaSyA-123", "a.b_c"} {
		client := newKeyClient(t, key)

		got, err := client.PlaylistItems().WithPlaylistID("X").Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasSuffix(got, "&key="+key) {
			t.Errorf("request should end with &key=%s, got %s", key, got)
		}
		if !strings.Contains(got, "playlistId=X") {
			t.Errorf("request should contain playlistId=X, got %s", got)
		}
		if strings.Contains(got, "access_token") {
			t.Errorf("API key request must not carry access_token, got %s", got)
		}
	}
}

func TestBuild_AccessTokenIsLastParameter(t *testing.T) {
	for _, token := range []string{"t", "ya29.a0Af", "tok-en"} {
		client, err := NewClient().WithDelegatedToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := client.PlaylistItems().WithPlaylistID("X").WithPageToken("c1").Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasSuffix(got, "&access_token="+token) {
			t.Errorf("request should end with &access_token=%s, got %s", token, got)
		}
		if strings.Contains(got, "key=") {
			t.Errorf("delegated request must not carry key=, got %s", got)
		}
	}
}

func TestBuild_RequiresPlaylistID(t *testing.T) {
	client := newKeyClient(t, "KEY")

	_, err := client.PlaylistItems().WithMaxResults(10).Build()

	if !errors.Is(err, ErrMissingPlaylistID) {
		t.Errorf("expected ErrMissingPlaylistID, got %v", err)
	}
}

// TestBuild_WithMethodsDoNotAlias verifies every With call returns an
// independent request: earlier values keep their own settings.
func TestBuild_WithMethodsDoNotAlias(t *testing.T) {
	client := newKeyClient(t, "KEY")

	first := client.PlaylistItems().WithPlaylistID("PL1")
	second := first.WithPageToken("next")

	firstURL, _ := first.Build()
	secondURL, _ := second.Build()

	if strings.Contains(firstURL, "pageToken") {
		t.Errorf("setting a token on a copy must not change the original, got %s", firstURL)
	}
	if !strings.Contains(secondURL, "&pageToken=next&") {
		t.Errorf("copy should carry the token, got %s", secondURL)
	}
}

func TestBuild_DoesNotEscapeValues(t *testing.T) {
	client := newKeyClient(t, "KEY")

	got, _ := client.PlaylistItems().WithPlaylistID("PL+a/b").Build()

	if !strings.Contains(got, "playlistId=PL+a/b&") {
		t.Errorf("playlist id should be passed through verbatim, got %s", got)
	}
}

func TestBuild_UsesCustomBaseURL(t *testing.T) {
	client, _ := NewClient(WithBaseURL("http://127.0.0.1:9999/youtube/v3/")).WithAPIKey("KEY")

	got, _ := client.PlaylistItems().WithPlaylistID("PL1").Build()

	if !strings.HasPrefix(got, "http://127.0.0.1:9999/youtube/v3/playlistItems?part=snippet&") {
		t.Errorf("request should use the configured base URL, got %s", got)
	}
}
