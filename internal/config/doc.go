// Package config loads, normalizes, and validates tidytext configuration.
//
// It supplies defaults, expands user paths (including the ~ shortcut), reads
// TOML files, and rejects values the CLI cannot act on. The [shorthand] table
// of the file is passed to the cleaner as dictionary overrides.
package config
