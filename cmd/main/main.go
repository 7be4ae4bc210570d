package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/CTAG07/markovbrain/pkg/corpus"
	"github.com/CTAG07/markovbrain/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// options are the command line flags.
type options struct {
	configPath string
	topic      string
	maxChars   int
	version    bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("markovbrain", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "markov_brain.yaml", "path of the YAML configuration file")
	fs.StringVar(&opts.topic, "topic", "Dantes", "whitespace separated words to speak about")
	fs.IntVar(&opts.maxChars, "max-chars", 0, "character budget of the utterance (0 uses max_chars from the config)")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	baseLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Printf("markovbrain %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return
	}

	if err = run(opts, os.Stdout); err != nil {
		baseLogger.Error("markovbrain failed", "error", err)
		os.Exit(1)
	}
}

// run builds a brain from the configuration and writes one utterance to out.
func run(opts *options, out io.Writer) error {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.Level()}))
	logger.Debug("Configuration loaded", "path", opts.configPath)

	brain, err := markov.NewBrain(config.Brain, markov.WithLogger(logger))
	if err != nil {
		return err
	}

	if config.PastMemoryDB != "" {
		if err = loadCorpusDB(config, brain, logger); err != nil {
			return err
		}
	}

	var speakOpts []markov.SpeakOption
	if opts.maxChars != 0 {
		speakOpts = append(speakOpts, markov.WithMaxChars(opts.maxChars))
	}
	_, err = fmt.Fprintln(out, brain.SpeakAbout(opts.topic, speakOpts...))
	return err
}

func loadCorpusDB(config *Config, brain *markov.Brain, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := openCorpusDB(ctx, config.PastMemoryDB)
	if err != nil {
		return fmt.Errorf("failed to initialize corpus database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close corpus database", "error", err)
		}
	}()

	loader := corpus.NewLoader(db)
	loader.SetLogger(logger)
	if _, err = loader.Load(ctx, config.PastMemoryQuery, brain); err != nil {
		return fmt.Errorf("failed to load corpus database: %w", err)
	}
	return nil
}
