package application

import (
	"context"

	"pokeinfo-bot/internal/domain/model"
)

// LookupUseCaseIface is the surface of the lookup use case the facade needs.
type LookupUseCaseIface interface {
	Lookup(ctx context.Context, name string) (*model.Lookup, error)
}
