package transformations

import (
	"slices"

	"tidytext/shorthand"
)

// span marks a run of identical adjacent runes inside a word. The run covers
// rune indices start..end inclusive, so end-start is the number of repeats
// that may still be removed.
type span struct {
	start int
	end   int
}

// FixStretching collapses emphasised spellings such as "whaaaat" toward a
// dictionary entry. Words without repeated letters are returned unchanged, and
// so are words for which no deletion order reaches the dictionary.
func FixStretching(tokens []string, dict shorthand.Map) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = unstretchWord(tok, dict)
	}
	return out
}

func unstretchWord(token string, dict shorthand.Map) string {
	word := []rune(token)
	spans := stretchSpans(word)
	if len(spans) == 0 {
		return token
	}
	// Every repeat removed still leaves a word longer than any key.
	if len(word)-remainingRepeats(spans) > dict.MaxKeyLen() {
		return token
	}

	for pivot := range spans {
		// Each pivot works on its own copy of the word and spans.
		if fixed, ok := unstretch(slices.Clone(word), slices.Clone(spans), pivot, dict); ok {
			return fixed
		}
	}
	return token
}

// stretchSpans finds every maximal run of two or more identical runes.
func stretchSpans(word []rune) []span {
	var spans []span
	inRun := false
	for j := 1; j < len(word); j++ {
		if word[j] != word[j-1] {
			inRun = false
			continue
		}
		if inRun {
			spans[len(spans)-1].end = j
			continue
		}
		spans = append(spans, span{start: j - 1, end: j})
		inRun = true
	}
	return spans
}

// unstretch removes repeated runes one at a time until the word is a
// dictionary key or every span is used up. pivot picks the span to trim:
// pivot-1, or the last span when pivot is 0. An exhausted span moves the
// pivot one step back, wrapping around.
//
// Span offsets are not shifted after a deletion in another span. A span that
// now starts past the end of the word counts as exhausted. While the word is
// longer than every key, consecutive deletions from one span are done in a
// single step.
func unstretch(word []rune, spans []span, pivot int, dict shorthand.Map) (string, bool) {
	maxLen := dict.MaxKeyLen()
	for {
		if len(word) <= maxLen {
			if expansion, ok := dict.Lookup(string(word)); ok {
				return expansion, true
			}
		}
		if remainingRepeats(spans) == 0 {
			return "", false
		}

		idx := len(spans) - 1
		if pivot > 0 {
			idx = pivot - 1
		}
		s := &spans[idx]
		if s.start >= len(word) {
			s.end = s.start
		}

		switch {
		case s.end > s.start:
			n := 1
			if excess := len(word) - maxLen; excess > 1 {
				n = min(s.end-s.start, excess, len(word)-s.start)
			}
			s.end -= n
			word = slices.Delete(word, s.start, s.start+n)
		case pivot > 0:
			pivot--
		default:
			pivot = len(spans) - 1
		}
	}
}

func remainingRepeats(spans []span) int {
	total := 0
	for _, s := range spans {
		total += s.end - s.start
	}
	return total
}
