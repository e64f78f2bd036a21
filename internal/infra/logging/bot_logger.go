package logging

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// BotLogger adapts zerolog to tgbotapi.BotLogger. tgbotapi reports polling failures
// through this logger and keeps retrying, so nothing here may panic or exit.
type BotLogger struct {
	log *zerolog.Logger
}

var _ tgbotapi.BotLogger = (*BotLogger)(nil)

func NewBotLogger(base *zerolog.Logger) *BotLogger {
	l := base.With().Str("component", "tgbotapi").Logger()
	return &BotLogger{log: &l}
}

func (b *BotLogger) Println(v ...interface{}) {
	for _, item := range v {
		if err, ok := item.(error); ok {
			b.logError(err)
			return
		}
	}
	b.log.Debug().Msg(fmt.Sprint(v...))
}

func (b *BotLogger) Printf(format string, v ...interface{}) {
	b.log.Debug().Msg(fmt.Sprintf(format, v...))
}

func (b *BotLogger) logError(err error) {
	b.log.Error().Err(err).Msg(DescribePollingError(err))
}

// DescribePollingError renders Telegram API errors with their code.
func DescribePollingError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Telegram API Error:\n[%d]\n%s", apiErr.Code, apiErr.Message)
	}
	return err.Error()
}
