package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/handtracking3d/handtracking-api/internal/server"
)

const (
	envPrefix      = "HANDTRACKING"
	configFileName = "config"
)

var home, _ = os.UserHomeDir()

// loadConfig merges defaults, config file, env and flags (in increasing
// precedence) and returns a validated server config.
func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := cmd.Flag("config").Changed
	if explicit {
		configFilePath, _ := cmd.Flags().GetString("config")
		v.SetConfigFile(configFilePath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".handtracking"))
		v.SetConfigName(configFileName)
	}

	// a missing file is only fine when we went looking for one
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("http.cert_file", cmd.Flags().Lookup("cert"))
	v.BindPFlag("http.key_file", cmd.Flags().Lookup("key"))
	v.BindPFlag("http.swagger", cmd.Flags().Lookup("swagger"))
	v.BindPFlag("cors.allow_origins", cmd.Flags().Lookup("origins"))
	v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setLogLevel(v.GetString("log.level")); err != nil {
		return nil, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("config file loaded", "path", used)
	}

	cfg := server.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := server.DefaultConfig()
	v.SetDefault("http.addr", def.HTTP.Addr)
	v.SetDefault("http.cert_file", def.HTTP.CertFile)
	v.SetDefault("http.key_file", def.HTTP.KeyFile)
	v.SetDefault("http.read_timeout", def.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", def.HTTP.WriteTimeout)
	v.SetDefault("http.idle_timeout", def.HTTP.IdleTimeout)
	v.SetDefault("http.shutdown_timeout", def.HTTP.ShutdownTimeout)
	v.SetDefault("http.rate_limit", def.HTTP.RateLimit)
	v.SetDefault("http.swagger", def.HTTP.Swagger)
	v.SetDefault("cors.allow_origins", def.CORS.AllowOrigins)
	v.SetDefault("log.level", "info")
}

func setLogLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	logLevel.Set(l)
	return nil
}
