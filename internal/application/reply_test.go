//go:build !integration

package application_test

import (
	"strings"
	"testing"

	"pokeinfo-bot/internal/application"
	"pokeinfo-bot/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func names(ns ...string) []model.NamedResource {
	out := make([]model.NamedResource, 0, len(ns))
	for _, n := range ns {
		out = append(out, model.NamedResource{Name: n})
	}
	return out
}

func pikachuLookup() *model.Lookup {
	electric := model.TypeSlot{Slot: 1, Type: model.NamedResource{Name: "electric", URL: "https://pokeapi.co/api/v2/type/13/"}}
	return &model.Lookup{
		Pokemon: model.Pokemon{
			Name:   "pikachu",
			Weight: 60,
			Height: 4,
			Abilities: []model.AbilitySlot{
				{Ability: model.NamedResource{Name: "static"}},
				{Ability: model.NamedResource{Name: "lightning-rod"}},
			},
			Stats: []model.StatSlot{
				{Stat: model.NamedResource{Name: "hp"}, BaseStat: 35},
				{Stat: model.NamedResource{Name: "speed"}, BaseStat: 90},
			},
			Types: []model.TypeSlot{electric},
		},
		Types: []model.TypeRelations{{
			Type: electric,
			Relations: model.DamageRelations{
				NoDamageTo:       names("ground"),
				DoubleDamageTo:   names("flying", "water"),
				DoubleDamageFrom: names("ground"),
				HalfDamageTo:     names("grass", "electric", "dragon"),
				HalfDamageFrom:   names("flying", "steel", "electric"),
			},
		}},
	}
}

const pikachuReply = `Name: Pikachu
Weight: 60
Height: 4

Abilities:
- static
- lightning-rod

Type: Electric
- Double damage dealt to:
  - flying
  - water
- Half damage dealt to:
  - grass
  - electric
  - dragon
- No damage dealt to:
  - ground
- Half damage taken from:
  - flying
  - steel
  - electric
- Double damage taken from:
  - ground`

func TestFormatReply_SingleType(t *testing.T) {
	got := application.FormatReply(pikachuLookup(), application.FormatOptions{})
	assert.Equal(t, pikachuReply, got)
}

func TestFormatReply_IsReproducible(t *testing.T) {
	a := application.FormatReply(pikachuLookup(), application.FormatOptions{})
	b := application.FormatReply(pikachuLookup(), application.FormatOptions{})
	assert.Equal(t, a, b)
}

func TestFormatReply_OmitsEmptyCategories(t *testing.T) {
	got := application.FormatReply(pikachuLookup(), application.FormatOptions{})
	assert.NotContains(t, got, "No damage taken from")

	l := pikachuLookup()
	l.Types[0].Relations = model.DamageRelations{}
	got = application.FormatReply(l, application.FormatOptions{})
	assert.True(t, strings.HasSuffix(got, "Type: Electric"), "bare type block expected, got:\n%s", got)
	for _, label := range []string{"damage dealt", "damage taken"} {
		assert.NotContains(t, got, label)
	}
}

func TestFormatReply_DualTypeKeepsOrder(t *testing.T) {
	fire := model.TypeSlot{Slot: 1, Type: model.NamedResource{Name: "fire"}}
	flying := model.TypeSlot{Slot: 2, Type: model.NamedResource{Name: "flying"}}
	l := &model.Lookup{
		Pokemon: model.Pokemon{
			Name: "charizard", Weight: 905, Height: 17,
			Abilities: []model.AbilitySlot{{Ability: model.NamedResource{Name: "blaze"}}},
			Types:     []model.TypeSlot{fire, flying},
		},
		Types: []model.TypeRelations{
			{Type: fire, Relations: model.DamageRelations{DoubleDamageFrom: names("ground", "rock", "water")}},
			{Type: flying, Relations: model.DamageRelations{NoDamageFrom: names("ground")}},
		},
	}

	got := application.FormatReply(l, application.FormatOptions{})
	want := `Name: Charizard
Weight: 905
Height: 17

Abilities:
- blaze

Type: Fire
- Double damage taken from:
  - ground
  - rock
  - water

Type: Flying
- No damage taken from:
  - ground`
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "Abilities:"))
}

func TestFormatReply_CategoryOrder(t *testing.T) {
	l := pikachuLookup()
	l.Types[0].Relations = model.DamageRelations{
		NoDamageTo:       names("a"),
		NoDamageFrom:     names("b"),
		DoubleDamageTo:   names("c"),
		DoubleDamageFrom: names("d"),
		HalfDamageTo:     names("e"),
		HalfDamageFrom:   names("f"),
	}
	got := application.FormatReply(l, application.FormatOptions{})

	order := []string{
		"- No damage taken from:\n  - b",
		"- Double damage dealt to:\n  - c",
		"- Half damage dealt to:\n  - e",
		"- No damage dealt to:\n  - a",
		"- Half damage taken from:\n  - f",
		"- Double damage taken from:\n  - d",
	}
	last := -1
	for _, section := range order {
		idx := strings.Index(got, section)
		if assert.GreaterOrEqual(t, idx, 0, "missing %q", section) {
			assert.Greater(t, idx, last, "%q out of order", section)
			last = idx
		}
	}
}

func TestFormatReply_Stats(t *testing.T) {
	without := application.FormatReply(pikachuLookup(), application.FormatOptions{})
	assert.NotContains(t, without, "Base Stats:")

	with := application.FormatReply(pikachuLookup(), application.FormatOptions{ShowStats: true})
	assert.Contains(t, with, "- lightning-rod\n\nBase Stats:\n- hp: 35\n- speed: 90\n\nType: Electric")
}

func TestFormatReply_Nil(t *testing.T) {
	assert.Equal(t, "", application.FormatReply(nil, application.FormatOptions{}))
}

func TestFormatReply_BareTypeBlockBeforeAnother(t *testing.T) {
	normal := model.TypeSlot{Slot: 1, Type: model.NamedResource{Name: "normal"}}
	ghost := model.TypeSlot{Slot: 2, Type: model.NamedResource{Name: "ghost"}}
	l := &model.Lookup{
		Pokemon: model.Pokemon{Name: "testmon", Types: []model.TypeSlot{normal, ghost}},
		Types: []model.TypeRelations{
			{Type: normal},
			{Type: ghost, Relations: model.DamageRelations{NoDamageFrom: names("normal", "fighting")}},
		},
	}

	got := application.FormatReply(l, application.FormatOptions{})
	assert.Contains(t, got, "\n\nType: Normal\n\nType: Ghost\n- No damage taken from:\n  - normal\n  - fighting")
}
