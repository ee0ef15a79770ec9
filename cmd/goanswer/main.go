package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	fs := flag.NewFlagSet("goanswer", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: goanswer [flags] <question words...>\n\n")
		fs.PrintDefaults()
	}
	cfg, err := app.LoadConfig(fs, os.Args[1:], bindOutputFlags)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("configuration")
		os.Exit(2)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	question := strings.Join(fs.Args(), " ")
	if err := run(ctx, cfg, question, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Only configuration problems are fatal; lookups always produce a record.
		if errors.Is(err, errConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var errConfig = errors.New("invalid configuration")

func bindOutputFlags(fs *flag.FlagSet, cfg *app.Config) {
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, markdown or json")
	fs.StringVar(&cfg.OutputPDFPath, "output.pdf", cfg.OutputPDFPath, "Also write the answer to this PDF file")
}

func run(ctx context.Context, cfg app.Config, question string, w io.Writer) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	defer a.Close()

	return a.Run(ctx, question, w)
}
