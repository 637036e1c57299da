package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/gauthierbraillon/ytsync/internal/aggregator"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const maxTitleWidth = 60

// Render writes items to w in the given format.
func Render(w io.Writer, items []aggregator.FeedItem, format string) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()
		return encoder.Encode(items)
	case FormatText:
		_, err := io.WriteString(w, NewTerminalFormatter().FormatFeed(items))
		return err
	case FormatTable, "":
		return renderTable(w, items)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, items []aggregator.FeedItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No videos found.")
		return err
	}

	f := NewTerminalFormatter()
	table := tablewriter.NewWriter(w)
	table.Header("Playlist", "Title", "Author", "URL")

	for _, item := range items {
		if err := table.Append(
			item.Playlist,
			f.TruncateText(valueOr(item.Title, missing), maxTitleWidth),
			valueOr(item.Author, missing),
			item.URL,
		); err != nil {
			return fmt.Errorf("failed to add table row: %w", err)
		}
	}

	return table.Render()
}
