package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
)

const (
	DefaultAddr            = "0.0.0.0:8000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultAllowOrigins is the vite dev server of the front-end.
var DefaultAllowOrigins = []string{"http://localhost:5173"}

type Config struct {
	HTTP *HttpServerConfig `mapstructure:"http"`
	CORS *CORSConfig       `mapstructure:"cors"`
}

type HttpServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	CertFile        string        `mapstructure:"cert_file"`
	KeyFile         string        `mapstructure:"key_file"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// RateLimit per client ip in limiter notation ("100-S"). Empty disables it.
	RateLimit string `mapstructure:"rate_limit"`
	// Swagger serves the OpenAPI docs under /swagger/
	Swagger bool `mapstructure:"swagger"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: &HttpServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		CORS: &CORSConfig{
			AllowOrigins: append([]string(nil), DefaultAllowOrigins...),
		},
	}
}

func (c *Config) Validate() error {
	if c.HTTP == nil {
		return errors.New("http config is required")
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if c.CORS == nil {
		return errors.New("cors config is required")
	}
	if err := c.CORS.Validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

func (c *HttpServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return errors.New("cert_file and key_file must be set together")
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0 || c.ShutdownTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
			return fmt.Errorf("rate_limit %q: %w", c.RateLimit, err)
		}
	}
	return nil
}

// TLSEnabled reports whether the server terminates TLS itself.
func (c *HttpServerConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func (c *CORSConfig) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return errors.New("allow_origins must not be empty")
	}
	for _, origin := range c.AllowOrigins {
		// credentials are allowed, so browsers reject a wildcard origin anyway
		if origin == "*" {
			return errors.New("wildcard origin cannot be combined with credentials")
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("origin %q must start with http:// or https://", origin)
		}
		if strings.HasSuffix(origin, "/") {
			return fmt.Errorf("origin %q must not end with a slash", origin)
		}
	}
	return nil
}
