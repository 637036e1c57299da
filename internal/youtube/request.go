package youtube

import "strconv"

// PlaylistItemsRequest builds a playlistItems request URL.
// Every With method returns an updated copy; the receiver is left untouched.
type PlaylistItemsRequest struct {
	baseURL    string
	auth       Authorization
	playlistID string
	maxResults uint
	pageToken  string
}

// WithPlaylistID sets the playlist to list.
func (r PlaylistItemsRequest) WithPlaylistID(id string) PlaylistItemsRequest {
	r.playlistID = id
	return r
}

// WithMaxResults sets the page size. Zero leaves the choice to the API.
func (r PlaylistItemsRequest) WithMaxResults(n uint) PlaylistItemsRequest {
	r.maxResults = n
	return r
}

// WithPageToken sets the continuation cursor. Empty means the first page.
func (r PlaylistItemsRequest) WithPageToken(token string) PlaylistItemsRequest {
	r.pageToken = token
	return r
}

// Build returns the request URL. Parameters are emitted in a fixed order:
// part, playlistId, maxResults, pageToken, then the credential last.
// Values are not escaped.
func (r PlaylistItemsRequest) Build() (string, error) {
	if r.auth == nil {
		return "", ErrNotAuthenticated
	}
	if r.playlistID == "" {
		return "", ErrMissingPlaylistID
	}

	target := r.baseURL + "/playlistItems?part=snippet"
	target += "&playlistId=" + r.playlistID

	if r.maxResults > 0 {
		target += "&maxResults=" + strconv.FormatUint(uint64(r.maxResults), 10)
	}

	if r.pageToken != "" {
		target += "&pageToken=" + r.pageToken
	}

	target += "&" + r.auth.Param() + "=" + r.auth.Value()

	return target, nil
}
