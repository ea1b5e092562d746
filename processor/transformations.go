package processor

import (
	"strings"

	"tidytext/transformations"
)

// duplicateSafeWords may be dropped when typed twice in a row.
var duplicateSafeWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "but": {},
	"or": {}, "nor": {}, "for": {}, "so": {}, "yet": {},
}

// assemble drops repeated function words, capitalizes sentence starts and
// joins the tokens back into a sentence that ends in terminal punctuation.
func assemble(tokens []string) string {
	words := make([]string, 0, len(tokens))
	markers := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if n := len(words); n > 0 && isRepeatedFunctionWord(words[n-1], tok) {
			continue
		}
		words = append(words, tok)
		markers = append(markers, endingMarker(tok))
	}

	var sb strings.Builder
	for i, word := range words {
		if shouldCapitalize(words, markers, i) {
			word = transformations.Capitalize(word)
		}
		// A lone "." stays glued to the previous word.
		if i != 0 && word != "." {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
	}

	out := sb.String()
	if !isTerminal(lastRune(out)) {
		out += "."
	}
	return out
}

func isRepeatedFunctionWord(prev, word string) bool {
	if !strings.EqualFold(prev, word) {
		return false
	}
	_, ok := duplicateSafeWords[strings.ToLower(word)]
	return ok
}

// shouldCapitalize decides whether words[i] starts a sentence. Words right
// after an ellipsis ("yesterday... to") are not treated as sentence starts.
func shouldCapitalize(words []string, markers []byte, i int) bool {
	if i == 0 {
		return true
	}
	prev := words[i-1]
	if markers[i-1] == 0 || !isTerminal(lastRune(prev)) {
		return false
	}
	if strings.HasSuffix(prev, "..") {
		return false
	}
	if i >= 2 && strings.HasSuffix(words[i-2], "..") {
		return false
	}
	return true
}
