package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// pronounTokens are removed from normalized names. Display names frequently
// carry "(she/her)" style annotations that would otherwise pollute name
// matching. Removal is plain substring replacement, applied in this order, so
// it will also strip these sequences out of the middle of a word (e.g.
// "Sher" loses its "her"). That over-match is long-standing behavior and is
// kept as-is; tests pin it.
var pronounTokens = []string{"they", "them", "her", "him", "she", "he"}

// Normalize canonicalizes a free-text name for comparison: case-folds it,
// replaces every rune that is not a letter or whitespace with a space,
// strips pronoun tokens, and collapses whitespace runs to single spaces.
// It is total on any input string.
func Normalize(name string) string {
	folded := cases.Fold().String(name)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	s := b.String()
	for _, token := range pronounTokens {
		s = strings.ReplaceAll(s, token, "")
	}

	return strings.Join(strings.Fields(s), " ")
}

// squash removes all spaces from an already-normalized name, giving the
// form used for containment tests ("Canada Bay" and "canadabay" compare
// equal after squashing).
func squash(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// containsWord reports whether key occurs in the normalized name bounded by
// word boundaries on both sides. Both arguments must already be normalized,
// so padding with spaces is a sufficient boundary test even for multi-word
// keys.
func containsWord(name, key string) bool {
	return strings.Contains(" "+name+" ", " "+key+" ")
}

// containsEither reports bidirectional containment between two squashed
// names: a participant who typed only a surname still matches a full
// registrant name, and vice versa.
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
