// Package batch cleans whole documents one line at a time.
//
// Every non-blank line is handed to a Cleaner as a single sentence; blank
// lines pass through so paragraph breaks survive. Line order and count are
// preserved.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"tidytext/internal/logging"
)

// ErrInvalidArgument marks input the caller must fix before retrying, such as
// a bad file name or an input/output path clash.
var ErrInvalidArgument = errors.New("invalid argument")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Cleaner cleans a single sentence.
type Cleaner interface {
	Clean(text string) string
}

// Options configures Run.
type Options struct {
	Logger *slog.Logger
}

// Stats summarises a Run.
type Stats struct {
	Lines   int
	Cleaned int
	Changed int
	Skipped int
	Blank   int
}

// Run reads r line by line, cleans every non-blank line with c and writes the
// result to w. Lines holding "//" are counted as skipped; the cleaner leaves
// them untouched.
func Run(ctx context.Context, r io.Reader, w io.Writer, c Cleaner, opts Options) (Stats, error) {
	var stats Stats
	if c == nil {
		return stats, fmt.Errorf("batch: nil cleaner: %w", ErrInvalidArgument)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	start := time.Now()
	logger.Info("batch started")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("batch: stopped after %d lines: %w", stats.Lines, err)
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		stats.Lines++

		var cleaned string
		switch {
		case strings.TrimSpace(line) == "":
			stats.Blank++
			cleaned = ""
		case strings.Contains(line, "//"):
			stats.Skipped++
			cleaned = line
		default:
			cleaned = c.Clean(line)
			stats.Cleaned++
			if cleaned != line {
				stats.Changed++
			}
		}

		if _, err := out.WriteString(cleaned + "\n"); err != nil {
			return stats, fmt.Errorf("batch: write line %d: %w", stats.Lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("batch: read line %d: %w", stats.Lines+1, err)
	}
	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("batch: flush output: %w", err)
	}

	logger.Info("batch finished",
		slog.Int("lines", stats.Lines),
		slog.Int("cleaned", stats.Cleaned),
		slog.Int("changed", stats.Changed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("blank", stats.Blank),
		slog.Duration("elapsed", time.Since(start)),
	)
	return stats, nil
}
