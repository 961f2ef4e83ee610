package config

import (
	"flag"
	"os"
	"strings"

	"github.com/mpavlenko/recipekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   base URL of the backend API (default from Config)
//	-d string   path of the local SQLite database
//	-k string   comma-separated recipe API keys
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "b", cfg.BackendBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local database")
	keys := fs.String("k", "", "comma-separated recipe API keys")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *keys != "" {
		cfg.APIKeys = strings.Split(*keys, ",")
	}
}
