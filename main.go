package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/terminal"
	"github.com/robalobadob/hangman/internal/words"
)

// version is injected at build time.
var version = "dev"

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Printf("hangman %s\n", version)
		return
	}

	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if cfg.ImportPath != "" {
		if err := runImport(cfg.DB, cfg.ImportPath); err != nil {
			log.Fatal().Err(err).Msg("import failed")
		}
		return
	}

	src, closeSrc, err := openSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("failed to open word source")
	}
	defer closeSrc()

	g, err := game.Start(src)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	l, err := terminal.NewReadline()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer l.Close()

	if err := terminal.NewSession(g, l, l.Stdout(), log.Logger).Run(); err != nil {
		log.Error().Err(err).Msg("session ended with error")
	}
}

// setupLogging configures the global zerolog logger. Logs go to stderr as
// console output, or as JSON lines to logFile when it is set.
func setupLogging(level, logFile string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	if logFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

// openSource builds the single word source for this session.
func openSource(cfg config) (words.Source, func() error, error) {
	noop := func() error { return nil }

	var (
		list []string
		err  error
	)
	switch cfg.Source {
	case sourceEmbedded:
		if !cfg.Daily {
			src, err := words.Embedded()
			if err != nil {
				return nil, noop, err
			}
			return src, noop, nil
		}
		list, err = words.EmbeddedList()

	case sourceSQLite:
		db, err := words.OpenSQLite(cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		if !cfg.Daily {
			return db, db.Close, nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		list, err = db.Words(ctx)
		_ = db.Close()
		if err != nil {
			return nil, noop, err
		}

	default:
		if !cfg.Daily {
			src, err := words.FromFile(cfg.Dict)
			if err != nil {
				return nil, noop, err
			}
			return src, noop, nil
		}
		list, err = words.ReadFile(cfg.Dict)
	}
	if err != nil {
		return nil, noop, err
	}

	d, err := words.NewDaily(list, cfg.DailySalt)
	if err != nil {
		return nil, noop, err
	}
	log.Info().Str("date", words.DateKey(time.Now())).Msg("word of the day")
	return d, noop, nil
}

// runImport loads a word list file into the SQLite dictionary.
func runImport(dsn, path string) error {
	db, err := words.OpenSQLite(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	ctx := context.Background()
	added, err := db.Import(ctx, f)
	if err != nil {
		return err
	}
	total, err := db.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d new words (%d total)\n", added, total)
	return nil
}
