package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pokeinfo-bot/internal/domain"
	"pokeinfo-bot/internal/infra/logging"

	"github.com/rs/zerolog"
)

const (
	StartCommand = "/start"
	Greeting     = "Hello!\nPlease enter just the Pokémon name to get its details."
)

// ReplyKind says how an incoming text was routed.
type ReplyKind string

const (
	ReplyIgnored ReplyKind = "ignored"
	ReplyStart   ReplyKind = "start"
	ReplyQuery   ReplyKind = "query"
)

// Reply is what the Telegram adapter should send back. Text is empty for ReplyIgnored.
// Err is the lookup failure already rendered into Text, kept for logging.
type Reply struct {
	Kind ReplyKind
	Text string
	Err  error
}

type FacadeOptions struct {
	EnableStartCommand bool
	Format             FormatOptions
}

// BotFacade turns incoming chat text into reply text.
// Keep the facade returning strings so the Telegram adapter just forwards them to the chat.
type BotFacade struct {
	LookupUC LookupUseCaseIface
	opts     FacadeOptions
	log      *zerolog.Logger
}

func NewBotFacade(lookupUC LookupUseCaseIface, opts FacadeOptions, logger *zerolog.Logger) *BotFacade {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &BotFacade{LookupUC: lookupUC, opts: opts, log: logger}
}

// HandleText routes one message body. It never returns an error: lookup failures and
// panics become an error reply.
func (b *BotFacade) HandleText(ctx context.Context, text string) (reply Reply) {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return Reply{Kind: ReplyIgnored}
	}
	if b.opts.EnableStartCommand && strings.Contains(input, StartCommand) {
		return Reply{Kind: ReplyStart, Text: Greeting}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("internal error: %v", rec)
			logging.With(ctx, b.log).Error().Interface("panic", rec).Msg("query handler panicked")
			reply = Reply{Kind: ReplyQuery, Text: ErrorReply(err), Err: err}
		}
	}()
	return b.handleQuery(ctx, input)
}

func (b *BotFacade) handleQuery(ctx context.Context, name string) Reply {
	if b.LookupUC == nil {
		err := fmt.Errorf("lookup usecase not available: %w", domain.ErrInvalidArgument)
		return Reply{Kind: ReplyQuery, Text: ErrorReply(err), Err: err}
	}
	res, err := b.LookupUC.Lookup(ctx, name)
	if err != nil {
		return Reply{Kind: ReplyQuery, Text: ErrorReply(err), Err: err}
	}
	return Reply{Kind: ReplyQuery, Text: FormatReply(res, b.opts.Format)}
}

// ErrorReply renders a failure for the user.
func ErrorReply(err error) string {
	msg := "An error occurred: " + err.Error()
	if errors.Is(err, domain.ErrNotFound) {
		msg += "\nSend just the Pokémon name, e.g. pikachu."
	}
	return msg
}
