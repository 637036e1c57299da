package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://youtube.googleapis.com/youtube/v3"

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithLogger sets the logger used for page fetch progress.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit paces outgoing requests to rps requests per second.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMaxPages bounds the number of pages FetchAll will request.
// Zero means unbounded.
func WithMaxPages(n int) ClientOption {
	return func(c *Client) {
		c.maxPages = n
	}
}

// Client is an authenticated YouTube Data API client.
// Obtain one from Unauthenticated.WithAPIKey or Unauthenticated.WithDelegatedToken.
type Client struct {
	auth       Authorization
	baseURL    string
	httpClient HTTPClient
	logger     zerolog.Logger
	limiter    *rate.Limiter
	maxPages   int
}

// NewClient creates an unauthenticated YouTube API client.
func NewClient(opts ...ClientOption) *Unauthenticated {
	c := Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &Unauthenticated{base: c}
}

// Authorization returns the credential the client sends.
func (c *Client) Authorization() Authorization {
	return c.auth
}

// PlaylistItems returns a new playlistItems request bound to the client's credential.
func (c *Client) PlaylistItems() PlaylistItemsRequest {
	return PlaylistItemsRequest{
		baseURL: c.baseURL,
		auth:    c.auth,
	}
}

func (c *Client) doRequest(ctx context.Context, target string) ([]byte, error) {
	redacted := c.redact(target)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{URL: redacted, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: redacted, Err: fmt.Errorf("failed to create request: %w", unwrapURLError(err))}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: redacted, Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: redacted, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: redacted, StatusCode: resp.StatusCode, Err: handleAPIError(resp.StatusCode)}
	}

	return body, nil
}

func (c *Client) redact(target string) string {
	if c.auth == nil || c.auth.Value() == "" {
		return target
	}
	return strings.TrimSuffix(target, c.auth.Value()) + "REDACTED"
}

// unwrapURLError drops the *url.Error wrapper, which repeats the full target
// including the credential.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func handleAPIError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("YouTube API rejected the request - check the playlist id and page size")
	case http.StatusUnauthorized:
		return fmt.Errorf("YouTube API authentication failed - check your API key or access token")
	case http.StatusForbidden:
		return fmt.Errorf("YouTube API access denied - the quota may be exhausted or the playlist is private")
	case http.StatusNotFound:
		return fmt.Errorf("YouTube playlist not found")
	case http.StatusTooManyRequests:
		return fmt.Errorf("YouTube API rate limit exceeded - please try again later")
	case http.StatusServiceUnavailable:
		return fmt.Errorf("YouTube API temporarily unavailable - please try again in a few minutes")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("YouTube API server error - please try again later")
	default:
		return fmt.Errorf("YouTube API error (status %d) - please try again", statusCode)
	}
}
