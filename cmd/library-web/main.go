package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/app"
	"finitefield.org/library-web/internal/web/config"
	"finitefield.org/library-web/internal/web/httpserver"
	"finitefield.org/library-web/internal/web/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "library-web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	application := app.New(app.Options{
		Credentials: cfg.Login,
		Logger:      logger,
	})
	defer application.Close()

	srv := httpserver.New(httpserver.Config{
		Address:          cfg.Server.Address,
		Environment:      cfg.Environment,
		App:              application,
		Logger:           logger,
		CSRFCookieName:   cfg.CSRF.CookieName,
		CSRFHeaderName:   cfg.CSRF.HeaderName,
		CSRFCookieSecure: cfg.CSRF.Secure,
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		IdleTimeout:      cfg.Server.IdleTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("library web listening",
		zap.String("addr", cfg.Server.Address),
		zap.String("environment", cfg.Environment),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
