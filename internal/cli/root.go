package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/milden6/prefixindex"
	"github.com/milden6/prefixindex/internal/config"
	"github.com/milden6/prefixindex/internal/console"
)

var (
	rootCmd = &cobra.Command{
		Use:           "autocomplete",
		Short:         "Prefix search and next-letter lookahead over a word list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath string
	dictPath   string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "word list to load, one word per line")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(shellCmd)
}

// Execute runs the command line and exits the process on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command tree. An interrupt is a normal way to leave.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if dictPath != "" {
		cfg.Dictionary.Path = dictPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	// Validate has already rejected unknown levels.
	level, _ := cfg.ZerologLevel()

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// buildIndex fills a new index with the seed words and the dictionary file.
func buildIndex(cfg *config.Config, logger zerolog.Logger) (*prefixindex.Index, error) {
	idx := prefixindex.NewFrom(cfg.Dictionary.Seed...)

	if cfg.Dictionary.Path != "" {
		words, err := prefixindex.LoadWords(cfg.Dictionary.Path)
		if err != nil {
			return nil, err
		}
		idx.AddAll(words)

		logger.Info().
			Str("path", cfg.Dictionary.Path).
			Int("read", len(words)).
			Msg("Loaded dictionary")
	}

	logger.Debug().Int("words", idx.Len()).Msg("Index ready")
	return idx, nil
}

func newSession(cmd *cobra.Command) (*console.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log, cmd.ErrOrStderr())

	idx, err := buildIndex(cfg, logger)
	if err != nil {
		return nil, err
	}

	return console.NewSession(idx, cmd.OutOrStdout(), cfg.Display.Separator, logger), nil
}
