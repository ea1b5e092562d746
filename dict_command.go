package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidytext/shorthand"
)

func newDictCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var overridesOnly bool

	cmd := &cobra.Command{
		Use:   "dict",
		Short: "List the shorthand dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			proc, err := ctx.newProcessor(logger)
			if err != nil {
				return err
			}

			builtin := shorthand.Defaults()
			prefix := strings.ToLower(strings.TrimSpace(filter))
			var rows [][]string
			for _, entry := range proc.Dictionary().Entries() {
				if prefix != "" && !strings.HasPrefix(entry.Key, prefix) {
					continue
				}
				if overridesOnly && !entry.Override {
					continue
				}
				source, replaced := "default", ""
				if entry.Override {
					source = "override"
					replaced = builtin[entry.Key]
				}
				rows = append(rows, []string{entry.Key, entry.Expansion, source, replaced})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No matching entries")
				return nil
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Expansion", "Source", "Replaces"}, rows, nil))
			fmt.Fprintf(out, "%d of %d entries\n", len(rows), proc.Dictionary().Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list keys starting with this prefix")
	cmd.Flags().BoolVar(&overridesOnly, "overrides", false, "Only list entries set in the configuration file")
	return cmd
}
