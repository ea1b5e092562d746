// Package processor turns one informally written sentence into a cleaned,
// capitalized and punctuated one.
//
// A Processor is built once with the caller's shorthand overrides and then
// used for any number of Clean calls, from any number of goroutines.
package processor

import (
	"log/slog"

	"tidytext/internal/logging"
	"tidytext/shorthand"
	"tidytext/transformations"
)

// Processor cleans sentences against a fixed shorthand dictionary.
type Processor struct {
	dict   shorthand.Map
	logger *slog.Logger
}

// Option customises a Processor.
type Option func(*Processor)

// WithLogger routes per-sentence debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New builds a Processor whose dictionary is the built-in shorthand merged
// with overrides. Overrides win on key collisions.
func New(overrides map[string]string, opts ...Option) *Processor {
	p := &Processor{
		dict:   shorthand.New(overrides),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dictionary returns the merged shorthand dictionary.
func (p *Processor) Dictionary() shorthand.Map {
	return p.dict
}

// Clean applies all transformations to a single sentence.
//
// Empty input gives empty output. Text containing "//" is treated as a URL
// and returned untouched.
func (p *Processor) Clean(text string) string {
	if text == "" {
		return ""
	}
	if isURL(text) {
		p.logger.Debug("url guard hit, sentence left untouched", slog.Int("length", len(text)))
		return text
	}

	text = normalizeQuotes(text)
	text = transformations.FixPeriodAndEllipsis(text)
	text = transformations.FixSpaceAfterCharacter(text)

	words := tokenize(text)
	if len(words) == 0 {
		return ""
	}
	tokenCount := len(words)

	stretched := transformations.FixStretching(words, p.dict)
	if n := countChanged(words, stretched); n > 0 {
		p.logger.Debug("stretched words collapsed", slog.Int("count", n))
	}
	words = stretched
	words = transformations.FixShorthand(words, p.dict)
	words = transformations.FixSeparated(words)

	result := assemble(words)

	p.logger.Debug("sentence cleaned",
		slog.Int("tokens_in", tokenCount),
		slog.Int("tokens_out", len(words)),
	)
	return result
}

func countChanged(before, after []string) int {
	n := 0
	for i := range before {
		if before[i] != after[i] {
			n++
		}
	}
	return n
}
