// File: cmd/app/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pokeinfo-bot/internal/application"
	"pokeinfo-bot/internal/config"
	"pokeinfo-bot/internal/infra/adapters/pokeapi"
	tele "pokeinfo-bot/internal/infra/adapters/telegram"
	httpapi "pokeinfo-bot/internal/infra/http"
	"pokeinfo-bot/internal/infra/logging"
	"pokeinfo-bot/internal/infra/metrics"
	"pokeinfo-bot/internal/infra/worker"
	"pokeinfo-bot/internal/usecase"
)

// Set via -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("config")
		return err
	}
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	if cfg.Bot.Token == "" {
		logger.Error().Msgf("%s is not set; nothing to do", config.EnvToken)
		return nil
	}
	return serve(cfg, logger)
}

// serve is swapped out in tests so run can be checked without touching Telegram.
var serve = serveBot

// serveBot wires the bot and blocks until a shutdown signal or a fatal component error.
func serveBot(cfg *config.Config, logger *zerolog.Logger) error {
	logger.Info().
		Str("token", logging.Redact(cfg.Bot.Token, cfg.Runtime.Dev)).
		Str("pokeapi", cfg.PokeAPI.BaseURL).
		Int("workers", cfg.Bot.Workers).
		Msg("starting pokeinfo bot")

	if err := tgbotapi.SetLogger(logging.NewBotLogger(logger)); err != nil {
		logger.Warn().Err(err).Msg("telegram logger not installed")
	}

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- PokeAPI ----
	pokedex, err := pokeapi.NewClient(cfg.PokeAPI, nil, logger)
	if err != nil {
		logger.Error().Err(err).Msg("pokeapi client")
		return err
	}

	// ---- Use cases / facade ----
	lookupUC := usecase.NewLookupUseCase(pokedex, logger)
	facade := application.NewBotFacade(lookupUC, application.FacadeOptions{
		EnableStartCommand: cfg.Bot.StartCommandEnabled(),
		Format:             application.FormatOptions{ShowStats: cfg.Bot.ShowStats},
	}, logger)

	// ---- Telegram ----
	pool := worker.NewPool(cfg.Bot.Workers, logger)
	botAdapter, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, facade, pool, logger)
	if err != nil {
		logger.Error().Str("error", logging.DescribePollingError(err)).Msg("telegram")
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	pool.Start(gctx)
	g.Go(func() error {
		defer pool.Stop()
		return botAdapter.StartPolling(gctx)
	})

	// ---- Ops server ----
	if cfg.Admin.Port > 0 {
		srv := httpapi.NewServer(cfg.Admin.Port, nil, logger)
		g.Go(srv.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("stopped with error")
		return err
	}
	logger.Info().Msg("shutdown complete")
	return nil
}
