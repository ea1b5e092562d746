// Command tidytext cleans informally written sentences: it expands chat
// shorthand, collapses stretched words, repairs punctuation spacing, and
// capitalizes and terminates each sentence.
//
// The Cobra command tree wraps the processor package. `clean` works on
// arguments or stdin, `file` rewrites a .txt document line by line, `dict`
// lists the shorthand dictionary, and `config` manages the TOML file that
// carries dictionary overrides and logging settings.
package main
