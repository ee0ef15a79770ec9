// Package wiki talks to a MediaWiki knowledge service (Wikipedia by default)
// and returns short plain-text summaries for article titles.
package wiki

import (
	"context"
	"fmt"
	"strings"
)

// SummaryRequest describes one summary lookup.
type SummaryRequest struct {
	Title string
	Lang  string
	// Sentences bounds the extract length. Zero means the service default.
	Sentences int
	// AutoSuggest resolves Title through the search suggestion first so close
	// misspellings still land on an article.
	AutoSuggest    bool
	FollowRedirect bool
}

// Summary is the resolved article and its extract.
type Summary struct {
	Title   string
	PageID  int
	Extract string
	URL     string
}

// Service returns summaries. Client and FileService implement it.
type Service interface {
	Summary(ctx context.Context, req SummaryRequest) (Summary, error)
}

// AmbiguousError reports a disambiguation page: the title matches several
// articles.
type AmbiguousError struct {
	Title   string
	Options []string
}

func (e *AmbiguousError) Error() string {
	if len(e.Options) == 0 {
		return fmt.Sprintf("%q may refer to several articles", e.Title)
	}
	return fmt.Sprintf("%q may refer to: %s", e.Title, strings.Join(e.Options, ", "))
}

// NotFoundError reports that no article matches the title.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("page %q does not match any article", e.Title)
}

// APIError is an error object returned in a MediaWiki response body.
type APIError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediawiki api error %s: %s", e.Code, e.Info)
}

// ArticleURL builds the canonical article link for title under base, which
// may contain a {lang} placeholder. Spaces become underscores; nothing else is
// escaped so the link keeps the title readable.
func ArticleURL(base, lang, title string) string {
	base = strings.ReplaceAll(base, "{lang}", lang)
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.ReplaceAll(title, " ", "_")
}
