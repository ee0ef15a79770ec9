// Package search scrapes the rendered result page of a web search engine for
// its inline answer snippet.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperifyio/goanswer/internal/extract"
)

// DefaultEndpoint is the search page queried with ?q=.
const DefaultEndpoint = "https://www.google.com/search"

// DefaultUserAgent is a browser-like User-Agent; many engines reject requests
// without one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ErrUnparsable reports a body that could not be read as HTML.
var ErrUnparsable = errors.New("unparsable result page")

// Fetcher retrieves a page body and its content type.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// Engine builds search URLs for one endpoint and extracts snippets from the
// pages they return.
type Engine struct {
	endpoint  *url.URL
	fetcher   Fetcher
	extractor extract.SnippetExtractor
}

// NewEngine validates endpoint once so that URL never fails afterwards.
func NewEngine(endpoint string, f Fetcher, x extract.SnippetExtractor) (*Engine, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("search endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("search endpoint must be an absolute http(s) URL: %q", endpoint)
	}
	if f == nil {
		return nil, errors.New("search engine needs a fetcher")
	}
	if x == nil {
		return nil, errors.New("search engine needs a snippet extractor")
	}
	return &Engine{endpoint: u, fetcher: f, extractor: x}, nil
}

// Name identifies the engine in logs.
func (e *Engine) Name() string { return e.endpoint.Host }

// URL returns the result page address for query. Spaces become '+', other
// reserved characters are percent-encoded. Existing endpoint parameters are kept.
func (e *Engine) URL(query string) string {
	sep := "?"
	if e.endpoint.RawQuery != "" {
		sep = "&"
	}
	base := *e.endpoint
	base.Fragment = ""
	// A bare trailing '?' would otherwise be kept and doubled.
	base.ForceQuery = false
	return base.String() + sep + "q=" + url.QueryEscape(query)
}

// Snippet fetches pageURL and runs the extractor over it. found is false when
// the page has no snippet block; err is set only when the page could not be
// fetched or parsed.
func (e *Engine) Snippet(ctx context.Context, pageURL string) (text string, found bool, err error) {
	body, _, err := e.fetcher.Get(ctx, pageURL)
	if err != nil {
		return "", false, err
	}
	doc, err := extract.Parse(body)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	text, found = e.extractor.Extract(doc)
	return text, found, nil
}
