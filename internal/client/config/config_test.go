package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.APIBaseURL)
	assert.Equal(t, "127.0.0.1:50051", c.HealthAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "greeter.db", c.DatabaseFile)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_Defaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client"}

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, LoadConfig()))
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"http://file:1","online_check_interval":"10s"}`), 0o600))

	c := load([]string{"-config", path, "-a", "http://flag:2"})

	assert.Equal(t, "http://flag:2", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "greeter.db", c.DatabaseFile)
}
