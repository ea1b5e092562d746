package transformations

import (
	"strings"

	"tidytext/shorthand"
)

// trailingPunctuation is the set of characters kept aside while a word is
// looked up and re-appended after its expansion.
const trailingPunctuation = "?!.;+"

// FixShorthand replaces dictionary words with their expansions, keeping any
// trailing punctuation: "u?" becomes "you?". The looked-up body is the whole
// token minus that trailing run, so it may hold non-alphanumeric characters:
// "b/c" and "n/a" match their entries, and a leading quote blocks the match.
func FixShorthand(tokens []string, dict shorthand.Map) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		body := strings.TrimRight(tok, trailingPunctuation)
		if body == "" {
			out[i] = tok
			continue
		}
		if expansion, ok := dict.Lookup(body); ok {
			out[i] = expansion + tok[len(body):]
			continue
		}
		out[i] = tok
	}
	return out
}
