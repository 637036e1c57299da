package youtube

// Authorization is the credential bound to an authenticated Client.
// It is implemented only by APIKey and AccessToken.
type Authorization interface {
	// Param is the query parameter name the credential is sent under.
	Param() string
	// Value is the credential itself.
	Value() string

	sealed()
}

// APIKey authorizes requests with a static API key. Only public data is reachable.
type APIKey string

func (k APIKey) Param() string { return "key" }
func (k APIKey) Value() string { return string(k) }
func (APIKey) sealed()         {}

// AccessToken authorizes requests with a delegated OAuth 2.0 access token.
type AccessToken string

func (t AccessToken) Param() string { return "access_token" }
func (t AccessToken) Value() string { return string(t) }
func (AccessToken) sealed()         {}

// Unauthenticated is a client without a credential. It cannot build requests;
// WithAPIKey or WithDelegatedToken must be called to obtain a Client.
type Unauthenticated struct {
	base Client
}

// WithAPIKey returns a new Client authorized with key.
func (u *Unauthenticated) WithAPIKey(key string) (*Client, error) {
	if key == "" {
		return nil, ErrInvalidCredential
	}
	return u.authenticate(APIKey(key)), nil
}

// WithDelegatedToken returns a new Client authorized with an OAuth access token.
func (u *Unauthenticated) WithDelegatedToken(token string) (*Client, error) {
	if token == "" {
		return nil, ErrInvalidCredential
	}
	return u.authenticate(AccessToken(token)), nil
}

func (u *Unauthenticated) authenticate(auth Authorization) *Client {
	c := u.base
	c.auth = auth
	return &c
}
