//go:build !integration

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"pokeinfo-bot/internal/domain"
	"pokeinfo-bot/internal/domain/model"
	"pokeinfo-bot/internal/domain/ports/adapter"
)

var _ adapter.PokedexClient = (*MockPokedex)(nil)

// MockPokedex is an in-memory PokedexClient keyed by pokemon name and type URL.
type MockPokedex struct {
	mu        sync.Mutex
	Pokemon   map[string]*model.Pokemon
	Relations map[string]*model.DamageRelations
	Errs      map[string]error // keyed by pokemon name or type URL
	Calls     []string
}

func NewMockPokedex() *MockPokedex {
	return &MockPokedex{
		Pokemon:   map[string]*model.Pokemon{},
		Relations: map[string]*model.DamageRelations{},
		Errs:      map[string]error{},
	}
}

func (m *MockPokedex) GetPokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "pokemon:"+name)
	if err, ok := m.Errs[name]; ok {
		return nil, err
	}
	p, ok := m.Pokemon[name]
	if !ok {
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

func (m *MockPokedex) GetTypeRelations(ctx context.Context, ref model.NamedResource) (*model.DamageRelations, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "type:"+ref.Name)
	if err, ok := m.Errs[ref.URL]; ok {
		return nil, err
	}
	r, ok := m.Relations[ref.URL]
	if !ok {
		return nil, fmt.Errorf("type %q: %w", ref.Name, domain.ErrNotFound)
	}
	return r, nil
}

// newTestLogger creates a silent zerolog.Logger for use in tests.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func res(name string, id int) model.NamedResource {
	return model.NamedResource{Name: name, URL: fmt.Sprintf("https://pokeapi.co/api/v2/type/%d/", id)}
}
