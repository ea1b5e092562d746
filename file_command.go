package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"tidytext/batch"
)

func newFileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "file <input.txt> <output.txt>",
		Short: "Clean every line of a text file into another file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile, outputFile := args[0], args[1]
			if err := validateFileArgs(inputFile, outputFile); err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			proc, err := ctx.newProcessor(logger)
			if err != nil {
				return err
			}

			// The lock file is never removed, so every run locks the same inode.
			lock := flock.New(outputFile + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("lock output: %w", err)
			}
			if !locked {
				return fmt.Errorf("output %s is being written by another tidytext run", outputFile)
			}
			defer func() { _ = lock.Unlock() }()

			stats, err := cleanFile(cmd.Context(), inputFile, outputFile, proc,
				logger.With("input", inputFile, "output", outputFile))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderStatsTable(stats))
			return nil
		},
	}
}

// cleanFile writes the cleaned document to a temp file next to outputFile and
// renames it into place once every line succeeded. On failure outputFile is
// left as it was.
func cleanFile(ctx context.Context, inputFile, outputFile string, c batch.Cleaner, logger *slog.Logger) (batch.Stats, error) {
	in, err := os.Open(inputFile)
	if err != nil {
		return batch.Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outputFile), ".tidytext-*.tmp")
	if err != nil {
		return batch.Stats{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	stats, err := batch.Run(ctx, in, tmp, c, batch.Options{Logger: logger})
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return stats, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return stats, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return stats, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, outputFile); err != nil {
		os.Remove(tmpName)
		return stats, fmt.Errorf("replace output: %w", err)
	}
	return stats, nil
}

func validateFileArgs(inputFile, outputFile string) error {
	if !isValidTxtFile(inputFile) {
		return fmt.Errorf("%w: input file must have a .txt extension", batch.ErrInvalidArgument)
	}
	if !isValidTxtFile(outputFile) {
		return fmt.Errorf("%w: output file must have a .txt extension", batch.ErrInvalidArgument)
	}

	absInput, err := filepath.Abs(inputFile)
	if err == nil {
		absOutput, err := filepath.Abs(outputFile)
		if err == nil && absInput == absOutput {
			return fmt.Errorf("%w: input and output files cannot be the same", batch.ErrInvalidArgument)
		}
	}

	if _, err := os.Stat(inputFile); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: input file %q does not exist", batch.ErrInvalidArgument, inputFile)
	}

	outputDir := filepath.Dir(outputFile)
	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: output directory %q does not exist", batch.ErrInvalidArgument, outputDir)
	}
	return nil
}

// isValidTxtFile checks that filename has a .txt extension and a name
// before it.
func isValidTxtFile(filename string) bool {
	if !strings.HasSuffix(strings.ToLower(filename), ".txt") {
		return false
	}
	base := filepath.Base(filename)
	return base != ".txt" && !strings.HasPrefix(base, ".")
}

func renderStatsTable(stats batch.Stats) string {
	rows := [][]string{
		{"Lines", strconv.Itoa(stats.Lines)},
		{"Cleaned", strconv.Itoa(stats.Cleaned)},
		{"Changed", strconv.Itoa(stats.Changed)},
		{"Skipped (URL)", strconv.Itoa(stats.Skipped)},
		{"Blank", strconv.Itoa(stats.Blank)},
	}
	return renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
