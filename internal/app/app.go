package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/answer"
	"github.com/hyperifyio/goanswer/internal/extract"
	"github.com/hyperifyio/goanswer/internal/fetch"
	"github.com/hyperifyio/goanswer/internal/metrics"
	"github.com/hyperifyio/goanswer/internal/resolve"
	"github.com/hyperifyio/goanswer/internal/search"
	"github.com/hyperifyio/goanswer/internal/wiki"
)

// App owns the answer pipeline built from one Config.
type App struct {
	cfg      Config
	http     *http.Client
	pipeline *answer.Pipeline
	metrics  *metrics.Metrics
}

// New validates cfg and wires both resolution tiers. It performs no I/O.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg}
	a.http = newHTTPClient(2 * maxDuration(cfg.PrimaryTimeout, cfg.FallbackTimeout))

	var svc resolve.SummaryService
	if cfg.WikiFile != "" {
		svc = &wiki.FileService{Path: cfg.WikiFile}
		log.Info().Str("file", cfg.WikiFile).Msg("using offline wiki fixture")
	} else {
		svc = wiki.NewClient(
			wiki.WithEndpoint(cfg.WikiAPIURL),
			wiki.WithHTTPClient(a.http),
			wiki.WithUserAgent(cfg.WikiUA),
		)
	}
	primary := resolve.NewPrimary(svc, resolve.PrimaryConfig{
		Lang:           cfg.Language,
		Sentences:      cfg.Sentences,
		AutoSuggest:    cfg.AutoSuggest,
		FollowRedirect: cfg.FollowRedirect,
		ArticleBase:    cfg.WikiArticleURL,
		Timeout:        cfg.PrimaryTimeout,
	})

	selectors, err := extract.ParseSelectors(cfg.SearchSelectors)
	if err != nil {
		return nil, fmt.Errorf("search selectors: %w", err)
	}
	fetcher := &fetch.Client{
		HTTPClient:          a.http,
		UserAgent:           cfg.SearchUA,
		PerRequestTimeout:   cfg.FallbackTimeout,
		AllowAnyContentType: true,
		MaxConcurrent:       cfg.MaxConcurrentFetches,
	}
	engine, err := search.NewEngine(cfg.SearchURL, fetcher, selectors)
	if err != nil {
		return nil, err
	}
	fallback := resolve.NewFallback(engine, resolve.FallbackConfig{
		MaxChars:      cfg.MaxSnippetChars,
		NoInformation: cfg.NoInformationText,
		Timeout:       cfg.FallbackTimeout,
	})

	opts := answer.Options{
		Unavailable:     cfg.UnavailableText,
		PlaceholderLink: cfg.PlaceholderLink,
	}
	if cfg.Metrics != nil {
		a.metrics = metrics.New(cfg.Metrics)
		opts.Observer = a.metrics
	}
	a.pipeline = answer.New(primary, fallback, opts)

	log.Debug().
		Str("lang", cfg.Language).
		Str("search", engine.Name()).
		Int("selectors", len(selectors)).
		Msg("answer pipeline ready")
	return a, nil
}

// Config returns the validated configuration.
func (a *App) Config() Config { return a.cfg }

// Pipeline exposes the pipeline for the HTTP front end.
func (a *App) Pipeline() *answer.Pipeline { return a.pipeline }

// Ask answers one raw question.
func (a *App) Ask(ctx context.Context, question string) []answer.Record {
	return a.pipeline.Answer(ctx, question)
}

// Run answers question, writes the formatted records to w and, when
// configured, exports them to a PDF file.
func (a *App) Run(ctx context.Context, question string, w io.Writer) error {
	records := a.Ask(ctx, question)
	out, err := FormatAnswers(records, a.cfg.Format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if a.cfg.OutputPDFPath != "" {
		if len(records) == 0 {
			return errors.New("pdf export: no answer to export")
		}
		if err := writeAnswersPDF(records, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("wrote PDF")
	}
	return nil
}

// Close releases idle connections.
func (a *App) Close() {
	if a.http != nil {
		a.http.CloseIdleConnections()
	}
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
