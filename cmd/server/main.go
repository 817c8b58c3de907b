package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/handtracking3d/handtracking-api/internal/server"
	"github.com/handtracking3d/handtracking-api/internal/version"
)

// adjusted once the config is loaded
var logLevel = new(slog.LevelVar)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server",
		Short:   version.AppName + " server",
		Version: version.Get().String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// config is fine, errors from here on are not usage errors
			cmd.SilenceUsage = true

			s, err := server.New(cfg)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return s.Start(cmd.Context())
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	cmd.Flags().String("cert", "", "Path to the TLS certificate file")
	cmd.Flags().StringP("key", "k", "", "Path to the TLS key file")
	cmd.Flags().Bool("swagger", false, "Serve the OpenAPI docs under /swagger/")
	cmd.Flags().StringSlice("origins", server.DefaultAllowOrigins, "Origins allowed to make cross-origin requests")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringP("config", "c", "", "Path to a yaml or json config file")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	logLevel.Set(slog.LevelInfo)
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      logLevel,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
