package processor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// isURL reports whether text looks like it carries a URL.
func isURL(text string) bool {
	return strings.Contains(text, "//")
}

// straightQuote maps curly quotes to their ASCII forms.
func straightQuote(r rune) rune {
	switch r {
	case '‘', '’':
		return '\''
	case '“', '”':
		return '"'
	default:
		return r
	}
}

// normalizeQuotes replaces curly single and double quotes with straight ones.
func normalizeQuotes(text string) string {
	out, _, err := transform.String(runes.Map(straightQuote), text)
	if err != nil {
		return text
	}
	return out
}

// tokenize splits the text on whitespace, dropping empty tokens.
func tokenize(text string) []string {
	return strings.Fields(text)
}

// endingMarker returns the first of '.', '!' or '?' found in word, checked
// in that order, or 0 when word has none.
func endingMarker(word string) byte {
	switch {
	case strings.Contains(word, "."):
		return '.'
	case strings.Contains(word, "!"):
		return '!'
	case strings.Contains(word, "?"):
		return '?'
	default:
		return 0
	}
}

// isTerminal reports whether r closes a sentence.
func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '"':
		return true
	default:
		return false
	}
}

// lastRune returns the final rune of s, or utf8.RuneError for "".
func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
