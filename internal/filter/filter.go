// Package filter selects videos with expr-lang boolean expressions.
//
// Expressions see the fields url, id, title, description, author, playlist
// and hasAuthor, the case-insensitive helper mentions, and the expr builtins.
//
//	mentions(title, "live") && hasAuthor
//	playlist == "PLxyz" || author in ["Chan A", "Chan B"]
//	lower(title) startsWith "studio"
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gauthierbraillon/ytsync/internal/aggregator"
	"github.com/gauthierbraillon/ytsync/internal/youtube"
)

// Env is the evaluation environment of a filter expression.
type Env struct {
	URL         string `expr:"url"`
	ID          string `expr:"id"`
	Title       string `expr:"title"`
	Description string `expr:"description"`
	Author      string `expr:"author"`
	Playlist    string `expr:"playlist"`
	HasAuthor   bool   `expr:"hasAuthor"`

	Mentions func(s, substr string) bool `expr:"mentions"`
}

// Filter is a compiled filter expression. The zero value matches everything.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles expression. An empty expression matches every item.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match reports whether item satisfies the filter.
func (f *Filter) Match(item aggregator.FeedItem) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, newEnv(item))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter on %s: %w", item.URL, err)
	}

	return out.(bool), nil
}

func newEnv(item aggregator.FeedItem) Env {
	return Env{
		URL:         item.URL,
		ID:          strings.TrimPrefix(item.URL, youtube.VideoURLPrefix),
		Title:       deref(item.Title),
		Description: deref(item.Description),
		Author:      deref(item.Author),
		Playlist:    item.Playlist,
		HasAuthor:   item.Author != nil,

		Mentions: func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
