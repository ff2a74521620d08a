package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/greeter/internal/flagx"
	"github.com/dmitrijs2005/greeter/internal/timex"
)

// JsonConfig is the on-disk shape of the client config file.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	HealthAddr          string         `json:"health_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DatabaseFile        string         `json:"database_file"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto cfg. Absent keys
// leave cfg untouched; unreadable or malformed files panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.APIBaseURL != "" {
		cfg.APIBaseURL = c.APIBaseURL
	}
	if c.HealthAddr != "" {
		cfg.HealthAddr = c.HealthAddr
	}
	if c.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = c.OnlineCheckInterval.Duration
	}
	if c.DatabaseFile != "" {
		cfg.DatabaseFile = c.DatabaseFile
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
}
