package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperifyio/goanswer/internal/answer"
	"github.com/hyperifyio/goanswer/internal/extract"
	"github.com/hyperifyio/goanswer/internal/resolve"
	"github.com/hyperifyio/goanswer/internal/search"
	"github.com/hyperifyio/goanswer/internal/wiki"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Primary tier (structured knowledge service)
	Language       string
	Sentences      int
	AutoSuggest    bool
	FollowRedirect bool
	WikiAPIURL     string
	WikiArticleURL string
	WikiFile       string // offline fixture; replaces the HTTP client when set
	WikiUA         string
	PrimaryTimeout time.Duration

	// Fallback tier (web search scrape)
	SearchURL            string
	SearchUA             string
	SearchSelectors      []string
	MaxSnippetChars      int
	FallbackTimeout      time.Duration
	MaxConcurrentFetches int

	// Fixed texts
	NoInformationText string
	UnavailableText   string
	PlaceholderLink   string

	// Output
	Format        string
	OutputPDFPath string

	// Server
	ListenAddr string

	Verbose bool

	// Metrics receives the pipeline collectors when set.
	Metrics prometheus.Registerer
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Defaults returns the configuration used when nothing else is given.
func Defaults() Config {
	p := resolve.DefaultPrimaryConfig()
	return Config{
		Language:          p.Lang,
		Sentences:         p.Sentences,
		AutoSuggest:       p.AutoSuggest,
		FollowRedirect:    p.FollowRedirect,
		WikiAPIURL:        wiki.DefaultEndpoint,
		WikiArticleURL:    wiki.DefaultArticleBase,
		WikiUA:            "goanswer/" + BuildVersion + " (+https://github.com/hyperifyio/goanswer)",
		PrimaryTimeout:    p.Timeout,
		SearchURL:         search.DefaultEndpoint,
		SearchUA:          search.DefaultUserAgent,
		SearchSelectors:   []string{extract.DefaultSelector},
		MaxSnippetChars:   resolve.DefaultMaxSnippetChars,
		FallbackTimeout:   10 * time.Second,
		NoInformationText: resolve.DefaultNoInformation,
		UnavailableText:   answer.DefaultUnavailable,
		PlaceholderLink:   answer.DefaultPlaceholderLink,
		Format:            FormatText,
		ListenAddr:        ":8080",
	}
}
