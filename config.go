package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/robalobadob/hangman/internal/words"
)

// Word source names accepted by -source / HANGMAN_SOURCE.
const (
	sourceFile     = "file"
	sourceEmbedded = "embedded"
	sourceSQLite   = "sqlite"
)

// config collects every runtime setting. Environment variables (optionally
// from .env) provide defaults; flags override them.
type config struct {
	LogLevel    string
	LogFile     string
	Source      string
	Dict        string
	DB          string
	Daily       bool
	DailySalt   string
	ImportPath  string
	ShowVersion bool
}

// loadConfig reads the environment and then parses args on top of it.
func loadConfig(args []string) (config, error) {
	cfg := config{
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFile:   getEnv("HANGMAN_LOG_FILE", ""),
		Source:    getEnv("HANGMAN_SOURCE", sourceFile),
		Dict:      getEnv("HANGMAN_DICT", words.DefaultDictionary),
		DB:        getEnv("HANGMAN_DB", "./data/words.db"),
		Daily:     getEnvBool("HANGMAN_DAILY", false),
		DailySalt: getEnv("HANGMAN_DAILY_SALT", "hangman"),
	}

	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append JSON logs to this file instead of stderr")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "word source: file, embedded or sqlite")
	fs.StringVar(&cfg.Dict, "dict", cfg.Dict, "dictionary file, one word per line")
	fs.StringVar(&cfg.DB, "db", cfg.DB, "SQLite dictionary database")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play the word of the day")
	fs.StringVar(&cfg.DailySalt, "daily-salt", cfg.DailySalt, "salt for the word of the day")
	fs.StringVar(&cfg.ImportPath, "import", "", "import a word list into the SQLite dictionary and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch cfg.Source {
	case sourceFile, sourceEmbedded, sourceSQLite:
	default:
		return config{}, fmt.Errorf("unknown word source %q (want %s, %s or %s)",
			cfg.Source, sourceFile, sourceEmbedded, sourceSQLite)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
