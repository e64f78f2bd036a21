package usecase

import (
	"context"
	"errors"
	"fmt"

	"pokeinfo-bot/internal/domain"
	"pokeinfo-bot/internal/domain/model"
	"pokeinfo-bot/internal/domain/ports/adapter"
	"pokeinfo-bot/internal/infra/logging"
	"pokeinfo-bot/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ LookupUseCase = (*lookupUC)(nil)

// LookupUseCase resolves a species and the damage relations of each of its types.
type LookupUseCase interface {
	Lookup(ctx context.Context, name string) (*model.Lookup, error)
}

type lookupUC struct {
	pokedex adapter.PokedexClient
	log     *zerolog.Logger
}

func NewLookupUseCase(pokedex adapter.PokedexClient, logger *zerolog.Logger) *lookupUC {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &lookupUC{pokedex: pokedex, log: logger}
}

// Lookup fetches the creature, then each type's relations in the creature's type order.
// The type calls depend on the first result and run one after another.
func (u *lookupUC) Lookup(ctx context.Context, name string) (*model.Lookup, error) {
	defer logging.TraceDuration(u.log, "LookupUC.Lookup")()
	log := logging.With(ctx, u.log)

	res, err := u.lookup(ctx, name)
	metrics.IncLookup(LookupResult(err))
	if err != nil {
		log.Debug().Err(err).Str("query", name).Msg("lookup failed")
		return nil, err
	}
	log.Debug().Str("pokemon", res.Pokemon.Name).Int("types", len(res.Types)).Msg("lookup done")
	return res, nil
}

func (u *lookupUC) lookup(ctx context.Context, name string) (*model.Lookup, error) {
	if u.pokedex == nil {
		return nil, fmt.Errorf("pokedex client not available: %w", domain.ErrInvalidArgument)
	}

	p, err := u.pokedex.GetPokemon(ctx, name)
	if err != nil {
		return nil, err
	}

	res := &model.Lookup{
		Pokemon: *p,
		Types:   make([]model.TypeRelations, 0, len(p.Types)),
	}
	for _, slot := range p.Types {
		rel, err := u.pokedex.GetTypeRelations(ctx, slot.Type)
		if err != nil {
			return nil, err
		}
		res.Types = append(res.Types, model.TypeRelations{Type: slot, Relations: *rel})
	}
	return res, nil
}

// LookupResult labels an error by lookup taxonomy for metrics and logs.
func LookupResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTransport):
		return "transport"
	case errors.Is(err, domain.ErrMalformedReference):
		return "malformed"
	case errors.Is(err, domain.ErrDeserialization):
		return "decode"
	default:
		return "other"
	}
}
