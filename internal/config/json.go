package config

import (
	"encoding/json"
	"os"
	"time"

	"hrconsole/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; the timeout
// is given in whole seconds.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout *int   `json:"request_timeout_seconds"`
	TokenPath      string `json:"token_path"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Absent flags mean no JSON stage. Read or unmarshal errors panic;
// a config file that exists but cannot be used is a startup fault.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil && *jc.RequestTimeout >= 0 {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeout) * time.Second
	}
	if jc.TokenPath != "" {
		cfg.TokenPath = jc.TokenPath
	}
}
