package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventManager/internal/config"
	"eventManager/internal/http-server/router"
	"eventManager/internal/lib/logger/handlers/slogpretty"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/lib/mail"
	"eventManager/internal/lib/password"
	"eventManager/internal/lib/token"
	"eventManager/internal/storage/postgres"
	"eventManager/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	router.Storage
	io.Closer
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event manager", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage initialized", slog.String("driver", cfg.Storage.Driver))

	handler := router.New(
		log,
		storage,
		password.New(cfg.Auth.BcryptCost),
		token.New(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		mail.New(log, cfg.Mail.APIKey, cfg.Mail.From, mail.WithTimeout(cfg.Mail.Timeout)),
		cfg.HTTPServer.AllowedOrigins,
	)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, &cfg.Database)
	default:
		return sqlite.New(ctx, cfg.Storage.Path)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
