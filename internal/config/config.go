// Package config assembles the console's runtime settings from defaults,
// environment (.env aware), an optional JSON file and command-line flags.
// Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the HR console.
//
// Fields:
//   - APIBaseURL: base address of the HR backend REST API.
//   - RequestTimeout: transport-level timeout for outbound calls. Zero means
//     "whatever the transport defaults to"; the client core reports timeouts
//     as their own error class either way.
//   - TokenPath: where the session token file lives. Empty means the
//     standard per-user location.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenPath      string
}

// LoadDefaults populates c with the defaults the console ships with.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 0
	c.TokenPath = ""
}

// LoadConfig constructs a Config: defaults, then environment, then JSON
// (if a -c/-config file is given), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
