package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventViewer/internal/cache"
	"eventViewer/internal/config"
	"eventViewer/internal/http-server/handlers/auth/login"
	"eventViewer/internal/http-server/handlers/auth/logout"
	"eventViewer/internal/http-server/handlers/event/getEventInfo"
	"eventViewer/internal/http-server/handlers/event/getEvents"
	"eventViewer/internal/http-server/handlers/event/getSchedule"
	"eventViewer/internal/http-server/middleware/mwlogger"
	"eventViewer/internal/lib/logger/handlers/slogpretty"
	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/session"
	"eventViewer/internal/upstream"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event viewer", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	loc, err := cfg.Display.Location()
	if err != nil {
		log.Error("invalid display timezone", sl.Err(err))
		os.Exit(1)
	}

	store, err := session.New(cfg.Session.Path)
	if err != nil {
		log.Error("failed to open session store", sl.Err(err))
		os.Exit(1)
	}

	client := upstream.New(cfg.Upstream, log)
	events := cache.New(client, cfg.Cache.Fresh, cfg.Cache.Stale, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/api/events", getEvents.New(log, events, cfg.Cache))
	router.Get("/api/events/{id}", getEventInfo.New(log, events, store, loc))
	router.Get("/api/schedule", getSchedule.New(log, events, store, loc))
	router.Post("/api/login", login.New(log, store, cfg.Auth))
	router.Post("/api/logout", logout.New(log, store))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		// Warm the cache so the first viewer does not pay for the
		// upstream round trip. A failure here is not fatal.
		warmCtx, cancel := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
		defer cancel()

		if _, err := events.Events(warmCtx); err != nil {
			log.Warn("failed to warm event cache", sl.Err(err))
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close session store", sl.Err(err))
	}

	log.Info("session store closed")
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
