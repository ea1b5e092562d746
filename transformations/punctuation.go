package transformations

import (
	"regexp"
	"strings"
)

var (
	leadingPeriodsRegex = regexp.MustCompile(`^[ .]+`)
	periodRunRegex      = regexp.MustCompile(`\b([ .]*\.[ .]*)(\b|$)`)
)

// spaceFixChars are the characters that get exactly one space after them,
// processed in this order.
var spaceFixChars = []string{",", ";", ":", "%"}

type spaceFixRule struct {
	char    string
	leading *regexp.Regexp
	run     *regexp.Regexp
}

var spaceFixRules = buildSpaceFixRules()

func buildSpaceFixRules() []spaceFixRule {
	rules := make([]spaceFixRule, 0, len(spaceFixChars))
	for _, c := range spaceFixChars {
		q := regexp.QuoteMeta(c)
		rules = append(rules, spaceFixRule{
			char:    c,
			leading: regexp.MustCompile(`^[ ` + q + `.]+`),
			run:     regexp.MustCompile(`\b([ ` + q + `]*` + q + `[ ` + q + `]*)(\b|$)`),
		})
	}
	return rules
}

// FixPeriodAndEllipsis normalizes runs of periods and the spaces around them.
//
// A run holding a single period is rewritten to ". " only when it starts with
// a space ("the pig . ran"); a period glued to the previous word is left for
// sentence assembly to judge. Two or more periods become "... ".
func FixPeriodAndEllipsis(text string) string {
	text = leadingPeriodsRegex.ReplaceAllString(text, "")

	matches := periodRunRegex.FindAllStringIndex(text, -1)
	// Apply right to left so earlier match offsets stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]
		run := text[start:end]

		var replacement string
		if strings.Count(run, ".") == 1 {
			if run[0] != ' ' {
				continue
			}
			replacement = ". "
		} else {
			replacement = "... "
		}
		text = text[:start] + replacement + text[end:]
	}
	return text
}

// FixSpaceAfterCharacter makes sure each of , ; : % is followed by exactly
// one space, except inside numbers such as 3,000.
func FixSpaceAfterCharacter(text string) string {
	for _, rule := range spaceFixRules {
		text = fixSpaceAfter(text, rule)
	}
	return text
}

func fixSpaceAfter(text string, rule spaceFixRule) string {
	text = rule.leading.ReplaceAllString(text, "")

	matches := rule.run.FindAllStringIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][0], matches[i][1]

		replacement := rule.char + " "
		if end < len(text) && isDigit(text[end]) {
			replacement = rule.char
		}
		text = text[:start] + replacement + text[end:]
	}
	return text
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
