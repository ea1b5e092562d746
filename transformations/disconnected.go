package transformations

import "strings"

// disconnectedWords are single words that are often typed as two.
var disconnectedWords = []string{
	"awesome",
	"everything",
	"herself",
	"himself",
	"nowhere",
	"today",
	"yourself",
}

// FixSeparated joins adjacent tokens that together spell one of the
// disconnected words ("every thing" -> "everything"). After a join the merged
// word is compared with the following token again.
func FixSeparated(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n := len(out); n > 0 {
			if word, ok := joinedWord(out[n-1], tok); ok {
				out[n-1] = word
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func joinedWord(left, right string) (string, bool) {
	joined := strings.ToLower(left + right)
	for _, w := range disconnectedWords {
		if w == joined {
			return w, true
		}
	}
	return "", false
}
