package transformations

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first rune of word and leaves the rest as is.
// A leading quote or digit is returned unchanged.
func Capitalize(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	// Casers keep state, so one is made per call.
	caser := cases.Upper(language.Und)
	return caser.String(string(r)) + word[size:]
}
