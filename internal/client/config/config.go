// Package config handles configuration for the greeter CLI: defaults, an
// optional JSON file and command-line flags, in that order of precedence.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the greeter CLI.
//
// Fields:
//   - APIBaseURL: base URL of the HTTP JSON API.
//   - HealthAddr: host:port of the server's gRPC health endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabaseFile: path of the local SQLite file holding the session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	HealthAddr          string
	OnlineCheckInterval time.Duration
	DatabaseFile        string
	LogLevel            string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.HealthAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseFile = "greeter.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Invalid input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
