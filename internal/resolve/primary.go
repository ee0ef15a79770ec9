package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/goanswer/internal/wiki"
)

// SummaryService is the structured knowledge service consulted first.
type SummaryService interface {
	Summary(ctx context.Context, req wiki.SummaryRequest) (wiki.Summary, error)
}

// PrimaryConfig holds every knob of the primary tier.
type PrimaryConfig struct {
	Lang           string
	Sentences      int
	AutoSuggest    bool
	FollowRedirect bool
	// ArticleBase is the article link template; {lang} is substituted.
	ArticleBase string
	// Timeout bounds one lookup. Zero leaves only the caller's deadline.
	Timeout time.Duration
}

// DefaultPrimaryConfig mirrors the behaviour the service was built around:
// Turkish Wikipedia, three sentences, suggestions and redirects on.
func DefaultPrimaryConfig() PrimaryConfig {
	return PrimaryConfig{
		Lang:           "tr",
		Sentences:      3,
		AutoSuggest:    true,
		FollowRedirect: true,
		ArticleBase:    wiki.DefaultArticleBase,
		Timeout:        10 * time.Second,
	}
}

// Primary treats the query as an article title.
type Primary struct {
	svc SummaryService
	cfg PrimaryConfig
}

func NewPrimary(svc SummaryService, cfg PrimaryConfig) *Primary {
	if cfg.ArticleBase == "" {
		cfg.ArticleBase = wiki.DefaultArticleBase
	}
	return &Primary{svc: svc, cfg: cfg}
}

// Resolve never returns an error; every failure is folded into the Outcome.
func (p *Primary) Resolve(ctx context.Context, query string) Outcome {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}
	sum, err := p.svc.Summary(ctx, wiki.SummaryRequest{
		Title:          query,
		Lang:           p.cfg.Lang,
		Sentences:      p.cfg.Sentences,
		AutoSuggest:    p.cfg.AutoSuggest,
		FollowRedirect: p.cfg.FollowRedirect,
	})
	if err != nil {
		return classifyPrimary(err)
	}
	if strings.TrimSpace(sum.Extract) == "" {
		return NotFound(fmt.Errorf("%w: %q has an empty summary", ErrNotFound, sum.Title))
	}
	// The link follows the caller's wording, not the resolved title.
	return Success(sum.Extract, wiki.ArticleURL(p.cfg.ArticleBase, p.cfg.Lang, query))
}

func classifyPrimary(err error) Outcome {
	var amb *wiki.AmbiguousError
	if errors.As(err, &amb) {
		return Ambiguous(fmt.Errorf("%w: %w", ErrAmbiguous, err))
	}
	var nf *wiki.NotFoundError
	if errors.As(err, &nf) {
		return NotFound(fmt.Errorf("%w: %w", ErrNotFound, err))
	}
	return Failure(fmt.Errorf("%w: %w", ErrTransport, err))
}
