package model

// NamedResource is PokeAPI's {name, url} pair. URL is the reference locator of the
// related resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type StatSlot struct {
	Stat     NamedResource `json:"stat"`
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// Pokemon is the species record returned by /pokemon/{name}.
// Weight is in hectograms and Height in decimeters, as reported upstream.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Weight    int           `json:"weight"`
	Height    int           `json:"height"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatSlot    `json:"stats"`
	Types     []TypeSlot    `json:"types"`
}

// DamageRelations is the matchup table of a single elemental type.
type DamageRelations struct {
	NoDamageTo       []NamedResource `json:"no_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
}

// IsEmpty reports whether every category is empty.
func (d DamageRelations) IsEmpty() bool {
	return len(d.NoDamageTo) == 0 && len(d.NoDamageFrom) == 0 &&
		len(d.DoubleDamageTo) == 0 && len(d.DoubleDamageFrom) == 0 &&
		len(d.HalfDamageTo) == 0 && len(d.HalfDamageFrom) == 0
}

// TypeRelations pairs one of the creature's types with its resolved relations.
type TypeRelations struct {
	Type      TypeSlot
	Relations DamageRelations
}

// Lookup is everything needed to render one reply. Types follows the order of
// Pokemon.Types.
type Lookup struct {
	Pokemon Pokemon
	Types   []TypeRelations
}

// Names flattens a resource list to its names, keeping order.
func Names(rs []NamedResource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}
