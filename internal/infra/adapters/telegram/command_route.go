package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"pokeinfo-bot/internal/application"
	"pokeinfo-bot/internal/infra/logging"
	"pokeinfo-bot/internal/infra/metrics"
)

// handleUpdate answers one update. Only text messages are routed; everything else
// (edits, callbacks, stickers) is dropped.
func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		metrics.IncTelegramUpdate(string(application.ReplyIgnored))
		return nil
	}

	ctx = logging.WithTraceID(ctx, uuid.NewString())
	if msg.From != nil {
		ctx = logging.WithTgID(ctx, msg.From.ID)
	}
	log := logging.With(ctx, r.log)

	reply := r.facade.HandleText(ctx, msg.Text)
	metrics.IncTelegramUpdate(string(reply.Kind))
	if reply.Kind == application.ReplyIgnored {
		return nil
	}
	if reply.Err != nil {
		log.Warn().Err(reply.Err).Int64("chat_id", msg.Chat.ID).Msg("query failed")
	}

	err := r.SendMessage(ctx, msg.Chat.ID, reply.Text)
	metrics.IncReplySent(err == nil)
	if err != nil {
		log.Error().Str("error", logging.DescribePollingError(err)).Int64("chat_id", msg.Chat.ID).Msg("reply not delivered")
		return err
	}
	log.Debug().Str("kind", string(reply.Kind)).Int64("chat_id", msg.Chat.ID).Msg("reply sent")
	return nil
}
