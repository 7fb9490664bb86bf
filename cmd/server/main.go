package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/econagent/internal/agent"
	"github.com/Alias1177/econagent/internal/chat"
	"github.com/Alias1177/econagent/internal/config"
	"github.com/Alias1177/econagent/internal/dataset"
	"github.com/Alias1177/econagent/internal/server"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg.LogLevel)

	// Column definitions come from the optional YAML file, otherwise the
	// built-in economic indicators are used.
	var specs []dataset.ColumnSpec
	if cfg.ColumnsFile != "" {
		specs, err = dataset.LoadColumnsFile(cfg.ColumnsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ColumnsFile).Msg("Failed to load columns file")
		}
	}

	ds, err := dataset.GenerateSynthetic(cfg, specs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate dataset")
	}
	log.Info().Int("rows", ds.Rows()).Int("columns", len(ds.Columns)).Msg("Synthetic dataset ready")

	completer := agent.NewClient(agent.ClientOptions{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.MaxAnswerTokens,
		Temperature: cfg.Temperature,
	})

	sessions := chat.NewStore(time.Duration(cfg.SessionTTL) * time.Minute)
	defer sessions.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.New(cfg, ds, completer, sessions).Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeout+5) * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info().Msg("Shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server error")
	}
	log.Info().Msg("Server stopped")
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
