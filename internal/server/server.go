package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/handtracking3d/handtracking-api/internal/version"
)

type Server struct {
	config *Config
	server *http.Server
}

func New(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Server{
		config: config,
		server: &http.Server{
			Addr:         config.HTTP.Addr,
			Handler:      SetupRoutes(config),
			ReadTimeout:  config.HTTP.ReadTimeout,
			WriteTimeout: config.HTTP.WriteTimeout,
			IdleTimeout:  config.HTTP.IdleTimeout,
		},
	}, nil
}

// Start serves until ctx is cancelled and then shuts down gracefully.
// It returns early with an error if the listener cannot be bound.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("server start", "app", version.AppName, "version", version.Get().String())
	defer slog.Info("server stop")

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.runHttpServer(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			slog.Error("http server error", "error", err)
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("server shutdown signal")
	if err := s.Stop(context.WithoutCancel(ctx)); err != nil {
		slog.Error("server shutdown error", "error", err)
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.HTTP.ShutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) runHttpServer() error {
	if s.config.HTTP.TLSEnabled() {
		slog.Info("server start tls", "addr", s.config.HTTP.Addr, "cert", s.config.HTTP.CertFile, "key", s.config.HTTP.KeyFile)
		return s.server.ListenAndServeTLS(s.config.HTTP.CertFile, s.config.HTTP.KeyFile)
	}
	slog.Info("server start http", "addr", s.config.HTTP.Addr, "origins", s.config.CORS.AllowOrigins)
	return s.server.ListenAndServe()
}
