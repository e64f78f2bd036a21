//go:build !integration

package application_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"pokeinfo-bot/internal/application"
	"pokeinfo-bot/internal/config"
	"pokeinfo-bot/internal/domain"
	"pokeinfo-bot/internal/domain/model"
	"pokeinfo-bot/internal/infra/adapters/pokeapi"
	"pokeinfo-bot/internal/infra/adapters/pokeapi/pokeapitest"
	"pokeinfo-bot/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLookupUC records queries and returns canned results.
type mockLookupUC struct {
	queries []string
	result  *model.Lookup
	err     error
	panicV  any
}

func (m *mockLookupUC) Lookup(ctx context.Context, name string) (*model.Lookup, error) {
	m.queries = append(m.queries, name)
	if m.panicV != nil {
		panic(m.panicV)
	}
	return m.result, m.err
}

func newFacade(uc application.LookupUseCaseIface, enableStart bool) *application.BotFacade {
	logger := zerolog.Nop()
	return application.NewBotFacade(uc, application.FacadeOptions{EnableStartCommand: enableStart}, &logger)
}

func TestBotFacade_HandleText(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text is ignored", func(t *testing.T) {
		uc := &mockLookupUC{}
		for _, text := range []string{"", "   ", "\n\t"} {
			r := newFacade(uc, true).HandleText(ctx, text)
			assert.Equal(t, application.ReplyIgnored, r.Kind)
			assert.Empty(t, r.Text)
		}
		assert.Empty(t, uc.queries)
	})

	t.Run("start command greets without lookups", func(t *testing.T) {
		uc := &mockLookupUC{}
		for _, text := range []string{"/start", "/START", "hey /start please"} {
			r := newFacade(uc, true).HandleText(ctx, text)
			assert.Equal(t, application.ReplyStart, r.Kind)
			assert.Equal(t, application.Greeting, r.Text)
		}
		assert.Empty(t, uc.queries)
	})

	t.Run("start command disabled is a query", func(t *testing.T) {
		uc := &mockLookupUC{err: fmt.Errorf("pokemon: %w", domain.ErrNotFound)}
		r := newFacade(uc, false).HandleText(ctx, "/start")
		assert.Equal(t, application.ReplyQuery, r.Kind)
		assert.Equal(t, []string{"/start"}, uc.queries)
		assert.True(t, strings.HasPrefix(r.Text, "An error occurred: "))
	})

	t.Run("query is lowercased and formatted", func(t *testing.T) {
		uc := &mockLookupUC{result: pikachuLookup()}
		r := newFacade(uc, true).HandleText(ctx, "  PiKaChu ")
		assert.Equal(t, application.ReplyQuery, r.Kind)
		assert.NoError(t, r.Err)
		assert.Equal(t, []string{"pikachu"}, uc.queries)
		assert.Equal(t, pikachuReply, r.Text)
	})

	t.Run("lookup error becomes reply text", func(t *testing.T) {
		uc := &mockLookupUC{err: fmt.Errorf("pokemon \"agumon\": %w: http 404", domain.ErrNotFound)}
		r := newFacade(uc, true).HandleText(ctx, "agumon")
		require.Error(t, r.Err)
		assert.Contains(t, r.Text, "An error occurred:")
		assert.Contains(t, r.Text, "agumon")
		assert.Contains(t, r.Text, "not found")
	})

	t.Run("transport error keeps its message", func(t *testing.T) {
		uc := &mockLookupUC{err: fmt.Errorf("%w: dial tcp: connection refused", domain.ErrTransport)}
		r := newFacade(uc, true).HandleText(ctx, "pikachu")
		assert.Equal(t, "An error occurred: upstream unavailable: dial tcp: connection refused", r.Text)
	})

	t.Run("panic is recovered into an error reply", func(t *testing.T) {
		uc := &mockLookupUC{panicV: "nil map"}
		var r application.Reply
		assert.NotPanics(t, func() { r = newFacade(uc, true).HandleText(ctx, "pikachu") })
		assert.Equal(t, application.ReplyQuery, r.Kind)
		assert.Contains(t, r.Text, "internal error: nil map")
	})

	t.Run("missing usecase is an error reply", func(t *testing.T) {
		r := newFacade(nil, true).HandleText(ctx, "pikachu")
		assert.True(t, errors.Is(r.Err, domain.ErrInvalidArgument))
	})
}

func TestBotFacade_EndToEndAgainstFakePokeAPI(t *testing.T) {
	srv := pokeapitest.NewServer()
	defer srv.Close()

	client, err := pokeapi.NewClient(config.PokeAPIConfig{BaseURL: srv.BaseURL(), Timeout: 2 * time.Second}, nil, nil)
	require.NoError(t, err)
	facade := newFacade(usecase.NewLookupUseCase(client, nil), true)
	ctx := context.Background()

	t.Run("pikachu", func(t *testing.T) {
		r := facade.HandleText(ctx, "pikachu")
		require.NoError(t, r.Err)

		assert.Equal(t, []string{"/pokemon/pikachu/", "/type/13/"}, srv.Requests())
		assert.True(t, strings.HasPrefix(r.Text, "Name: Pikachu\n"))
		assert.Contains(t, r.Text, "Weight: 60")
		assert.Contains(t, r.Text, "Height: 4")
		assert.Contains(t, r.Text, "Abilities:\n- static\n- lightning-rod\n")
		assert.Contains(t, r.Text, "Type: Electric")
		assert.Contains(t, r.Text, "- Half damage taken from:\n  - flying\n  - steel\n  - electric")
		assert.Equal(t, pikachuReply, r.Text)
	})

	t.Run("charizard has two type blocks", func(t *testing.T) {
		r := facade.HandleText(ctx, "Charizard")
		require.NoError(t, r.Err)
		fire := strings.Index(r.Text, "Type: Fire")
		flying := strings.Index(r.Text, "Type: Flying")
		require.True(t, fire > 0 && flying > fire, "got:\n%s", r.Text)
		assert.Contains(t, r.Text[flying:], "- No damage taken from:\n  - ground")
		assert.NotContains(t, r.Text[fire:flying], "No damage taken from")
	})

	t.Run("unknown name", func(t *testing.T) {
		r := facade.HandleText(ctx, "missingno")
		assert.True(t, errors.Is(r.Err, domain.ErrNotFound))
		assert.Contains(t, r.Text, "An error occurred:")
	})

	t.Run("start makes no requests", func(t *testing.T) {
		before := len(srv.Requests())
		r := facade.HandleText(ctx, "/start")
		assert.Equal(t, application.Greeting, r.Text)
		assert.Len(t, srv.Requests(), before)
	})
}
