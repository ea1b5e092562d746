package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidytext/batch"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "clean [text...]",
		Short: "Clean a sentence given as arguments, or every line of stdin",
		Long: "Clean the sentence formed by joining the arguments with spaces.\n" +
			"With no arguments each line read from stdin is cleaned and written to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			proc, err := ctx.newProcessor(logger)
			if err != nil {
				return err
			}
			colorize := ctx.colorize(cmd.ErrOrStderr())

			if len(args) == 0 {
				stats, err := batch.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), proc, batch.Options{Logger: logger})
				if err != nil {
					return err
				}
				if report {
					msg := fmt.Sprintf("%d lines, %d changed, %d skipped", stats.Lines, stats.Changed, stats.Skipped)
					kind := statusInfo
					if stats.Changed > 0 {
						kind = statusOK
					}
					fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine("stdin", kind, msg, colorize))
				}
				return nil
			}

			input := strings.Join(args, " ")
			output := proc.Clean(input)
			fmt.Fprintln(cmd.OutOrStdout(), output)

			if report {
				kind, msg := sentenceStatus(input, output)
				fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine("sentence", kind, msg, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Print a status summary to stderr")
	return cmd
}

func sentenceStatus(input, output string) (statusKind, string) {
	switch {
	case strings.Contains(input, "//"):
		return statusWarn, "looks like a URL, left untouched"
	case input != output:
		return statusOK, "cleaned"
	default:
		return statusInfo, "already clean"
	}
}
