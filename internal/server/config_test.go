package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.HTTP.TLSEnabled())
	assert.Empty(t, cfg.HTTP.RateLimit)

	// defaults must not alias the package level slice
	cfg.CORS.AllowOrigins[0] = "http://changed"
	assert.Equal(t, "http://localhost:5173", DefaultAllowOrigins[0])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing http",
			mutate:  func(c *Config) { c.HTTP = nil },
			wantErr: "http config is required",
		},
		{
			name:    "missing cors",
			mutate:  func(c *Config) { c.CORS = nil },
			wantErr: "cors config is required",
		},
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.HTTP.Addr = "" },
			wantErr: "addr is required",
		},
		{
			name:    "cert without key",
			mutate:  func(c *Config) { c.HTTP.CertFile = "cert.pem" },
			wantErr: "must be set together",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.HTTP.ReadTimeout = -time.Second },
			wantErr: "timeouts must not be negative",
		},
		{
			name:    "bad rate limit",
			mutate:  func(c *Config) { c.HTTP.RateLimit = "fast" },
			wantErr: "rate_limit",
		},
		{
			name:    "no origins",
			mutate:  func(c *Config) { c.CORS.AllowOrigins = nil },
			wantErr: "allow_origins must not be empty",
		},
		{
			name:    "wildcard origin",
			mutate:  func(c *Config) { c.CORS.AllowOrigins = []string{"*"} },
			wantErr: "wildcard origin",
		},
		{
			name:    "origin without scheme",
			mutate:  func(c *Config) { c.CORS.AllowOrigins = []string{"localhost:5173"} },
			wantErr: "must start with http:// or https://",
		},
		{
			name:    "origin with trailing slash",
			mutate:  func(c *Config) { c.CORS.AllowOrigins = []string{"http://localhost:5173/"} },
			wantErr: "must not end with a slash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidate_TLSAndRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HTTP.CertFile = "cert.pem"
	cfg.HTTP.KeyFile = "key.pem"
	cfg.HTTP.RateLimit = "100-S"
	cfg.CORS.AllowOrigins = []string{"http://localhost:5173", "https://handtracking.example.com"}

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.HTTP.TLSEnabled())
}
