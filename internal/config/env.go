package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the console.
const (
	envAPIBaseURL = "HRCONSOLE_API_URL"
	envTimeout    = "HRCONSOLE_TIMEOUT"
	envTokenPath  = "HRCONSOLE_TOKEN_PATH"
)

// loadDotenv is a test seam; tests swap it out so a developer's local .env
// cannot leak into assertions.
var loadDotenv = func() { _ = godotenv.Load() }

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first, without overriding variables that
// are already set.
func parseEnv(cfg *Config) {
	loadDotenv()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envTokenPath); v != "" {
		cfg.TokenPath = v
	}
}
