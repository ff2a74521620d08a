package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-g", "127.0.0.1:6000", "-i", "10", "-f", "/tmp/g.db", "-l", "debug"},
			expected: &Config{
				APIBaseURL:          "http://127.0.0.1:9090",
				HealthAddr:          "127.0.0.1:6000",
				OnlineCheckInterval: 10 * time.Second,
				DatabaseFile:        "/tmp/g.db",
				LogLevel:            "debug",
			},
		},
		{name: "incorrect check interval", args: []string{"-a", "http://127.0.0.1:9090", "-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
