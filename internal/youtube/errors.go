package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential is returned when an empty API key or access token is supplied.
	ErrInvalidCredential = errors.New("youtube: credential must not be empty")
	// ErrNotAuthenticated is returned when a request is built without a bound credential.
	ErrNotAuthenticated = errors.New("youtube: client is not authenticated")
	// ErrMissingPlaylistID is returned by Build when no playlist id was set.
	ErrMissingPlaylistID = errors.New("youtube: playlist id is required")
	// ErrTooManyPages is returned by FetchAll when the configured page bound is hit.
	ErrTooManyPages = errors.New("youtube: page limit exceeded")
)

// TransportError reports a failed round trip: a network failure or a non-200 status.
type TransportError struct {
	// URL is the request target with the credential redacted.
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the playlist page schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode playlist page: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
