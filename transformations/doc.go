// Package transformations holds the individual passes of the sentence
// cleaner: period and punctuation spacing repair, de-stretching, shorthand
// expansion, rejoining of split words, and capitalization.
//
// Every function is pure. Token passes take and return []string and never
// modify their input slice.
package transformations
