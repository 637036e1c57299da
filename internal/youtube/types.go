// Package youtube provides a client for the YouTube Data API v3 playlistItems resource.
//
// This package enables ytsync to:
// - Authenticate requests with an API key or a delegated OAuth access token
// - Build playlistItems request URLs
// - Walk every page of a playlist and normalize the items into Video records
package youtube

// VideoURLPrefix is prepended to a resource id to form the canonical watch URL.
const VideoURLPrefix = "https://youtube.com/watch?v="

// Video is the flat record produced for every playlist item.
// Title, Description and Author are nil when the value was absent on the wire.
type Video struct {
	URL         string  `json:"url" yaml:"url"`
	Title       *string `json:"title,omitempty" yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      *string `json:"author,omitempty" yaml:"author,omitempty"`
}

// PlaylistPage is one decoded playlistItems response.
type PlaylistPage struct {
	Items         []PlaylistEntry `json:"items"`
	NextPageToken *string         `json:"nextPageToken"`
}

// Cursor returns the continuation token and whether another page exists.
func (p *PlaylistPage) Cursor() (string, bool) {
	if p.NextPageToken == nil || *p.NextPageToken == "" {
		return "", false
	}
	return *p.NextPageToken, true
}

// Videos maps every entry of the page to a Video, preserving page order.
func (p *PlaylistPage) Videos() []Video {
	videos := make([]Video, 0, len(p.Items))
	for _, item := range p.Items {
		videos = append(videos, item.Video())
	}
	return videos
}

// PlaylistEntry is a single item of a playlist page.
type PlaylistEntry struct {
	Snippet ContentDescription `json:"snippet"`
}

// ContentDescription carries everything about the video except its link.
type ContentDescription struct {
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	VideoOwnerChannelTitle *string    `json:"videoOwnerChannelTitle"`
	ResourceID             ResourceID `json:"resourceId"`
}

// ResourceID identifies the video. The wire "kind" field is validated but not kept.
type ResourceID struct {
	VideoID string `json:"videoId"`
}

// Video converts the nested wire entry into the flat Video record.
func (e PlaylistEntry) Video() Video {
	title := e.Snippet.Title
	description := e.Snippet.Description

	video := Video{
		URL:         VideoURLPrefix + e.Snippet.ResourceID.VideoID,
		Title:       &title,
		Description: &description,
	}
	if e.Snippet.VideoOwnerChannelTitle != nil {
		author := *e.Snippet.VideoOwnerChannelTitle
		video.Author = &author
	}

	return video
}
