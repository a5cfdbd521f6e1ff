package config

import (
	"flag"
	"os"
	"time"

	"hrconsole/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   base URL of the HR backend API
//	-t int      request timeout in seconds (0 = transport default)
//	-p string   path to the session token file
//
// Arguments are filtered first so the JSON-stage flags (-c/-config) and
// anything else on the command line do not interfere.
func parseFlags(cfg *Config) {
	applyFlags(cfg, flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-p"}))
}

func applyFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the HR backend API")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds")
	fs.StringVar(&cfg.TokenPath, "p", cfg.TokenPath, "path to the session token file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}
