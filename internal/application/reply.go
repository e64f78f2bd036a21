package application

import (
	"fmt"
	"strings"

	"pokeinfo-bot/internal/domain/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatOptions toggles optional reply sections.
type FormatOptions struct {
	ShowStats bool
}

// relationCategory is one labeled list of a type block. The order of relationCategories
// is part of the reply format.
type relationCategory struct {
	label string
	pick  func(model.DamageRelations) []model.NamedResource
}

var relationCategories = []relationCategory{
	{"No damage taken from", func(d model.DamageRelations) []model.NamedResource { return d.NoDamageFrom }},
	{"Double damage dealt to", func(d model.DamageRelations) []model.NamedResource { return d.DoubleDamageTo }},
	{"Half damage dealt to", func(d model.DamageRelations) []model.NamedResource { return d.HalfDamageTo }},
	{"No damage dealt to", func(d model.DamageRelations) []model.NamedResource { return d.NoDamageTo }},
	{"Half damage taken from", func(d model.DamageRelations) []model.NamedResource { return d.HalfDamageFrom }},
	{"Double damage taken from", func(d model.DamageRelations) []model.NamedResource { return d.DoubleDamageFrom }},
}

// FormatReply renders a lookup as the chat reply. Identical input yields identical bytes.
func FormatReply(l *model.Lookup, opts FormatOptions) string {
	if l == nil {
		return ""
	}
	// cases.Caser keeps state; one per call.
	title := cases.Title(language.English)
	p := l.Pokemon

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", title.String(p.Name))
	fmt.Fprintf(&b, "Weight: %d\n", p.Weight)
	fmt.Fprintf(&b, "Height: %d\n", p.Height)

	b.WriteString("\nAbilities:\n")
	for _, a := range p.Abilities {
		fmt.Fprintf(&b, "- %s\n", a.Ability.Name)
	}

	if opts.ShowStats && len(p.Stats) > 0 {
		b.WriteString("\nBase Stats:\n")
		for _, s := range p.Stats {
			fmt.Fprintf(&b, "- %s: %d\n", s.Stat.Name, s.BaseStat)
		}
	}

	for _, tr := range l.Types {
		fmt.Fprintf(&b, "\nType: %s\n", title.String(tr.Type.Type.Name))
		if tr.Relations.IsEmpty() {
			continue
		}
		for _, cat := range relationCategories {
			entries := model.Names(cat.pick(tr.Relations))
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(&b, "- %s:\n", cat.label)
			for _, name := range entries {
				fmt.Fprintf(&b, "  - %s\n", name)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
