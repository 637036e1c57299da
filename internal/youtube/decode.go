package youtube

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// pageSchema describes the subset of a playlistItemListResponse that must be present.
// Unknown fields are allowed so new API fields never break decoding.
const pageSchema = `{
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["snippet"],
        "properties": {
          "snippet": {
            "type": "object",
            "required": ["title", "description", "resourceId"],
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "videoOwnerChannelTitle": {"type": ["string", "null"]},
              "resourceId": {
                "type": "object",
                "required": ["videoId", "kind"],
                "properties": {
                  "videoId": {"type": "string", "minLength": 1},
                  "kind": {"type": "string"}
                }
              }
            }
          }
        }
      }
    },
    "nextPageToken": {"type": ["string", "null"]}
  }
}`

var compiledPageSchema = mustCompileSchema(pageSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic("youtube: invalid page schema: " + err.Error())
	}
	return s
}

// DecodePage validates body against the playlist page schema and decodes it.
// Any structural mismatch yields a *DecodeError and no page.
func DecodePage(body []byte) (*PlaylistPage, error) {
	result, err := compiledPageSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &DecodeError{Err: errors.New(strings.Join(msgs, "; "))}
	}

	var page PlaylistPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &page, nil
}
