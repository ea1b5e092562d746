// Package shorthand holds the chat-shorthand dictionary used by the cleaning
// pipeline.
//
// The built-in entries are embedded as TOML and decoded once at start-up.
// Callers layer their own entries on top with New; an override always wins
// over a built-in entry with the same key. A Map is never modified after
// construction and may be shared between goroutines.
package shorthand

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

type defaultsFile struct {
	Shorthand map[string]string `toml:"shorthand"`
}

var builtin map[string]string

func init() {
	var file defaultsFile
	if err := toml.Unmarshal(defaultsTOML, &file); err != nil {
		panic(fmt.Sprintf("shorthand: parse embedded defaults: %v", err))
	}
	builtin = file.Shorthand
}

// Entry is one dictionary row as reported by Entries.
type Entry struct {
	Key       string
	Expansion string
	Override  bool
}

// Map is an immutable lowercase-key dictionary.
type Map struct {
	entries   map[string]string
	overrides map[string]struct{}
	maxKeyLen int
}

// New merges the built-in dictionary with overrides. Override keys are
// trimmed and lowercased; blank keys are ignored.
func New(overrides map[string]string) Map {
	m := Map{
		entries:   make(map[string]string, len(builtin)+len(overrides)),
		overrides: make(map[string]struct{}, len(overrides)),
	}
	for k, v := range builtin {
		m.entries[k] = v
	}
	for k, v := range overrides {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		m.entries[key] = v
		m.overrides[key] = struct{}{}
	}
	for k := range m.entries {
		m.maxKeyLen = max(m.maxKeyLen, utf8.RuneCountInString(k))
	}
	return m
}

// Lookup returns the expansion for word, compared in lowercase.
func (m Map) Lookup(word string) (string, bool) {
	v, ok := m.entries[strings.ToLower(word)]
	return v, ok
}

// MaxKeyLen reports the length in runes of the longest key. Words longer
// than this never match.
func (m Map) MaxKeyLen() int { return m.maxKeyLen }

// Len reports the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Entries returns every entry sorted by key.
func (m Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		_, override := m.overrides[k]
		out = append(out, Entry{Key: k, Expansion: v, Override: override})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Defaults returns a copy of the built-in dictionary.
func Defaults() map[string]string {
	cp := make(map[string]string, len(builtin))
	for k, v := range builtin {
		cp[k] = v
	}
	return cp
}
