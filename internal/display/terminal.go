// Package display renders synchronized playlists for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/gauthierbraillon/ytsync/internal/aggregator"
)

// missing is shown in place of an absent value.
const missing = "-"

// TerminalFormatter formats feed items as a plain text list.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatItem formats a single feed item for display.
func (f *TerminalFormatter) FormatItem(item aggregator.FeedItem) string {
	var lines []string

	// Header: [PLAYLIST] Title
	header := fmt.Sprintf("[%s] %s", item.Playlist, valueOr(item.Title, missing))
	lines = append(lines, header)

	if item.Author != nil {
		lines = append(lines, "  by "+*item.Author)
	}

	if item.Description != nil && *item.Description != "" {
		firstLine, _, _ := strings.Cut(*item.Description, "\n")
		lines = append(lines, "  "+f.TruncateText(firstLine, 80))
	}

	lines = append(lines, "  "+item.URL)

	return strings.Join(lines, "\n") + "\n"
}

// FormatFeed formats multiple feed items for display.
func (f *TerminalFormatter) FormatFeed(items []aggregator.FeedItem) string {
	if len(items) == 0 {
		return "No videos found.\n"
	}

	var formatted []string
	for _, item := range items {
		formatted = append(formatted, f.FormatItem(item))
	}

	return strings.Join(formatted, "\n---\n\n")
}

// TruncateText truncates text to maxLen runes, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
