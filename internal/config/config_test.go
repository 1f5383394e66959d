package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clambin/favorites/internal/config"
	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_KEY", "env-key")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		APIKey:                "env-key",
		BaseURL:               tmdb.DefaultBaseURL,
		ImageBaseURL:          tmdb.DefaultImageBaseURL,
		Timeout:               30 * time.Second,
		FavoriteTimeout:       10 * time.Second,
		MaxConcurrentRequests: 15,
		PosterCache:           config.PosterCache{TTL: time.Hour},
	}, cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
api_key: file-key
username: john
base_url: http://localhost:8080/3
timeout: 5s
max_concurrent_requests: 4
poster_cache:
  ttl: 0s
metrics:
  addr: :9090
`)
	t.Setenv("TMDB_USERNAME", "jane")
	t.Setenv("TMDB_POSTER_CACHE_TTL", "10m")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("password", "", "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--password", "secret", "--debug"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "jane", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://localhost:8080/3", cfg.BaseURL)
	assert.Equal(t, tmdb.DefaultImageBaseURL, cfg.ImageBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, int64(4), cfg.MaxConcurrentRequests)
	assert.Equal(t, 10*time.Minute, cfg.PosterCache.TTL)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "no api key", content: `username: john`, wantErr: config.ErrMissingAPIKey},
		{name: "relative base url", content: "api_key: key\nbase_url: /3"},
		{name: "negative timeout", content: "api_key: key\ntimeout: -1s"},
		{name: "no concurrency", content: "api_key: key\nmax_concurrent_requests: 0"},
		{name: "invalid yaml", content: "api_key: [key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
