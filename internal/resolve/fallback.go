package resolve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hyperifyio/goanswer/internal/search"
)

// DefaultNoInformation replaces the snippet when the result page has no
// snippet block.
const DefaultNoInformation = "Bilgi bulunamadı."

// SearchEngine is the web search tier.
type SearchEngine interface {
	URL(query string) string
	Snippet(ctx context.Context, pageURL string) (string, bool, error)
}

// FallbackConfig holds the knobs of the fallback tier.
type FallbackConfig struct {
	// MaxChars bounds the snippet in runes. Zero means DefaultMaxSnippetChars.
	MaxChars int
	// NoInformation is the sentinel used when no snippet block is found.
	NoInformation string
	// Timeout bounds one fetch. Zero leaves only the caller's deadline.
	Timeout time.Duration
}

// Fallback scrapes a search engine's result page.
type Fallback struct {
	engine SearchEngine
	cfg    FallbackConfig
}

func NewFallback(engine SearchEngine, cfg FallbackConfig) *Fallback {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxSnippetChars
	}
	if cfg.NoInformation == "" {
		cfg.NoInformation = DefaultNoInformation
	}
	return &Fallback{engine: engine, cfg: cfg}
}

// Resolve computes the search URL before any I/O and keeps it in the Outcome
// even on failure, so callers always have a link to show.
func (f *Fallback) Resolve(ctx context.Context, query string) Outcome {
	link := f.engine.URL(query)
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}
	text, found, err := f.engine.Snippet(ctx, link)
	if err != nil {
		out := Failure(classifyFallback(err))
		out.Link = link
		return out
	}
	if !found {
		text = f.cfg.NoInformation
	}
	return Success(Truncate(text, f.cfg.MaxChars), link)
}

func classifyFallback(err error) error {
	if errors.Is(err, search.ErrUnparsable) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
