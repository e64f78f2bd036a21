package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"pokeinfo-bot/internal/application"
	"pokeinfo-bot/internal/config"
	"pokeinfo-bot/internal/domain/ports/adapter"
	"pokeinfo-bot/internal/infra/worker"
)

var _ adapter.TelegramBotAdapter = (*RealTelegramBotAdapter)(nil)

// ErrUpdatesClosed is returned by StartPolling when the update stream ends on its own.
var ErrUpdatesClosed = errors.New("telegram update channel closed")

// botAPI is the part of *tgbotapi.BotAPI the adapter uses.
type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// RealTelegramBotAdapter long-polls Telegram and hands every update to the worker pool.
type RealTelegramBotAdapter struct {
	api    botAPI
	cfg    *config.BotConfig
	facade *application.BotFacade
	pool   *worker.Pool
	log    *zerolog.Logger
}

func NewRealTelegramBotAdapter(cfg *config.BotConfig, facade *application.BotFacade, pool *worker.Pool, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	bot.Debug = cfg.Debug
	if logger != nil {
		logger.Info().Str("username", bot.Self.UserName).Msg("authorized on telegram")
	}
	return newAdapter(bot, cfg, facade, pool, logger)
}

func newAdapter(api botAPI, cfg *config.BotConfig, facade *application.BotFacade, pool *worker.Pool, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}
	if pool == nil {
		return nil, errors.New("worker pool is nil")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &RealTelegramBotAdapter{api: api, cfg: cfg, facade: facade, pool: pool, log: logger}, nil
}

// StartPolling receives updates until ctx is done. Each update is handled on the pool,
// so a slow lookup for one chat does not hold up the others. Returns nil when ctx is
// done and ErrUpdatesClosed if the stream ends first.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = r.cfg.PollTimeout
	updates := r.api.GetUpdatesChan(u)
	defer r.api.StopReceivingUpdates()

	r.log.Info().Int("workers", r.pool.Size()).Msg("polling telegram updates")
	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("telegram polling stopped")
			return nil
		case up, ok := <-updates:
			if !ok {
				r.log.Error().Msg("telegram update stream ended")
				return ErrUpdatesClosed
			}
			err := r.pool.Submit(ctx, func(ctx context.Context) error {
				return r.handleUpdate(ctx, up)
			})
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, worker.ErrPoolStopped) {
					return nil
				}
				r.log.Error().Err(err).Int("update_id", up.UpdateID).Msg("dispatch update")
			}
		}
	}
}

// SendMessage implements the adapter port with a plain text message.
func (r *RealTelegramBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send to %d: %w", chatID, err)
	}
	return nil
}
