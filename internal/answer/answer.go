// Package answer turns a free-text question into one answer record by
// walking the resolution tiers in order.
package answer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/query"
	"github.com/hyperifyio/goanswer/internal/resolve"
)

// Record is the uniform answer unit. Title is always the trimmed question.
type Record struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Answer sources, used as log fields and metric labels.
const (
	SourcePrimary     = "primary"
	SourceFallback    = "fallback"
	SourcePlaceholder = "placeholder"
)

const (
	// DefaultUnavailable is the snippet of a placeholder record.
	DefaultUnavailable = "Bilgi alınamadı."
	// DefaultPlaceholderLink is used when a failed fallback left no link.
	DefaultPlaceholderLink = "#"
)

// Observer receives per-tier and per-answer measurements. *metrics.Metrics
// satisfies it.
type Observer interface {
	ObserveTier(tier, outcome string, d time.Duration)
	ObserveAnswer(source string)
}

// Options tunes the placeholder and wires an optional Observer.
type Options struct {
	Unavailable     string
	PlaceholderLink string
	Observer        Observer
}

// Pipeline sequences Primary, then Fallback, then a placeholder. It holds no
// mutable state and is safe for concurrent use.
type Pipeline struct {
	primary  resolve.Resolver
	fallback resolve.Resolver
	opts     Options
}

func New(primary, fallback resolve.Resolver, opts Options) *Pipeline {
	if opts.Unavailable == "" {
		opts.Unavailable = DefaultUnavailable
	}
	if opts.PlaceholderLink == "" {
		opts.PlaceholderLink = DefaultPlaceholderLink
	}
	return &Pipeline{primary: primary, fallback: fallback, opts: opts}
}

// Answer returns zero records for blank input and exactly one otherwise.
// It never fails; unreachable sources degrade to a placeholder record.
func (p *Pipeline) Answer(ctx context.Context, raw string) []Record {
	q, ok := query.Normalize(raw)
	if !ok {
		return nil
	}
	return []Record{p.Resolve(ctx, q)}
}

// Resolve runs the tiers for an already normalized query.
func (p *Pipeline) Resolve(ctx context.Context, q string) Record {
	if out, ok := p.attempt(ctx, SourcePrimary, p.primary, q); ok {
		return p.record(q, out.Snippet, out.Link, SourcePrimary)
	}
	out, ok := p.attempt(ctx, SourceFallback, p.fallback, q)
	if ok {
		return p.record(q, out.Snippet, out.Link, SourceFallback)
	}
	link := out.Link
	if link == "" {
		link = p.opts.PlaceholderLink
	}
	return p.record(q, p.opts.Unavailable, link, SourcePlaceholder)
}

func (p *Pipeline) attempt(ctx context.Context, tier string, r resolve.Resolver, q string) (resolve.Outcome, bool) {
	if r == nil {
		return resolve.Outcome{}, false
	}
	start := time.Now()
	out := r.Resolve(ctx, q)
	elapsed := time.Since(start)
	if p.opts.Observer != nil {
		p.opts.Observer.ObserveTier(tier, out.Kind.String(), elapsed)
	}
	ev := log.Debug()
	if out.Kind == resolve.KindFailure {
		ev = log.Warn()
	}
	ev.Str("tier", tier).Str("outcome", out.Kind.String()).Str("query", q).Dur("elapsed", elapsed).Err(out.Err).Msg("resolution attempt")
	return out, out.OK()
}

func (p *Pipeline) record(q, snippet, link, source string) Record {
	if p.opts.Observer != nil {
		p.opts.Observer.ObserveAnswer(source)
	}
	return Record{Title: q, Snippet: snippet, Link: link}
}
