package adapter

import (
	"context"

	"pokeinfo-bot/internal/domain/model"
)

// PokedexClient reads species and type data from the upstream data service.
// Implementations return errors wrapping the domain lookup sentinels.
type PokedexClient interface {
	GetPokemon(ctx context.Context, name string) (*model.Pokemon, error)
	GetTypeRelations(ctx context.Context, ref model.NamedResource) (*model.DamageRelations, error)
}
