package transformations_test

import (
	"testing"

	"tidytext/transformations"
)

func TestFixPeriodAndEllipsis(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"the pig.ran", "the pig.ran"},
		{"the pig .ran", "the pig. ran"},
		{"the pig . ran", "the pig. ran"},
		{"the pig. ran", "the pig. ran"},
		{"the pig..ran", "the pig... ran"},
		{"the pig .. ran", "the pig... ran"},
		{"wait....... what", "wait... what"},
		{"..hello", "hello"},
		{" . . hello", "hello"},
		{"pi is 3.14", "pi is 3.14"},
		{"the end .", "the end. "},
		{"no periods here", "no periods here"},
	}

	for _, tc := range tests {
		got := transformations.FixPeriodAndEllipsis(tc.input)
		if got != tc.want {
			t.Errorf("FixPeriodAndEllipsis(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFixSpaceAfterCharacter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello ,world", "hello, world"},
		{"I have 3,000 dollars", "I have 3,000 dollars"},
		{"I have 3,,000", "I have 3,000"},
		{"wait , , then", "wait, then"},
		{"a ; b", "a; b"},
		{"time:now", "time: now"},
		{"50 % off", "50% off"},
		{",,hello", "hello"},
		{"one,two;three", "one, two; three"},
	}

	for _, tc := range tests {
		got := transformations.FixSpaceAfterCharacter(tc.input)
		if got != tc.want {
			t.Errorf("FixSpaceAfterCharacter(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"élan", "Élan"},
		{`"quoted`, `"quoted`},
		{"3rd", "3rd"},
		{"", ""},
	}

	for _, tc := range tests {
		got := transformations.Capitalize(tc.input)
		if got != tc.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
