package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/autozbudoucnosti/ecoscore/internal/api"
	"github.com/autozbudoucnosti/ecoscore/internal/config"
	"github.com/autozbudoucnosti/ecoscore/internal/engine"
	"github.com/autozbudoucnosti/ecoscore/internal/factors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration failed")
	}

	logger := newLogger(cfg.Log)

	table := factors.New()
	service := api.New(cfg, logger, table, engine.New(table))

	server := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      service.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		logger.Info().Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().
		Str("addr", cfg.Server.ListenAddr).
		Str("methodology_version", engine.MethodologyVersion).
		Int("materials", len(table.MaterialIDs())).
		Msg("Starting impact assessment API")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	<-shutdownDone
}

func newLogger(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if err != nil {
		logger.Warn().Str("level", cfg.Level).Msg("Unknown log level, using info")
	}
	return logger
}
