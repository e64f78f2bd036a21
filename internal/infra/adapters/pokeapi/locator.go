package pokeapi

import (
	"fmt"
	"strconv"
	"strings"

	"pokeinfo-bot/internal/domain"
)

// ParseTypeID extracts the numeric id from a type reference locator of the form
// ".../type/{id}/". The trailing slash is optional.
func ParseTypeID(locator string) (int, error) {
	trimmed := strings.TrimSpace(locator)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty locator", domain.ErrMalformedReference)
	}

	segments := strings.Split(trimmed, "/")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	if len(segments) < 2 {
		return 0, fmt.Errorf("%w: %q has no id segment", domain.ErrMalformedReference, locator)
	}

	kind, raw := segments[len(segments)-2], segments[len(segments)-1]
	if kind != "type" {
		return 0, fmt.Errorf("%w: %q is not a type locator", domain.ErrMalformedReference, locator)
	}
	if !isCanonicalID(raw) {
		return 0, fmt.Errorf("%w: %q: id must be plain digits", domain.ErrMalformedReference, locator)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", domain.ErrMalformedReference, locator, err)
	}
	return id, nil
}

// isCanonicalID accepts [0-9]+ without a leading zero, the only form PokeAPI emits.
func isCanonicalID(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeName turns user input into a PokeAPI identifier: lowercase, inner
// whitespace collapsed to "-".
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
