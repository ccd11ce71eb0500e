package hangman

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercase word", raw: "hello", want: "HELLO"},
		{name: "phrase", raw: "data science", want: "DATA SCIENCE"},
		{name: "collapse spaces", raw: "data    science", want: "DATA SCIENCE"},
		{name: "tabs and newlines", raw: "deep\t\n learning", want: "DEEP LEARNING"},
		{name: "trim", raw: "   open source  ", want: "OPEN SOURCE"},
		{name: "hyphen dropped", raw: "state-of-the-art", want: "STATEOFTHEART"},
		{name: "digits and punctuation", raw: "r2-d2, droid!", want: "RD DROID"},
		{name: "dropped token keeps single gap", raw: "a - b", want: "A B"},
		{name: "non-latin letters dropped", raw: "café", want: "CAF"},
		{name: "only punctuation", raw: "!!! 123 ---", want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"  Machine   Learning  ",
		"x-ray  vision\t2000",
		"ÜBER cool",
		"a b", // non-breaking space
		"...",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeCanonicalForm(t *testing.T) {
	got := Normalize(" \tunit,  testing -- 101 ")
	for i, r := range got {
		if r == ' ' {
			if i == 0 || i == len(got)-1 || got[i-1] == ' ' {
				t.Fatalf("bad space at %d in %q", i, got)
			}
			continue
		}
		if r < 'A' || r > 'Z' {
			t.Fatalf("unexpected rune %q in %q", r, got)
		}
	}
	if got != "UNIT TESTING" {
		t.Errorf("got %q, want %q", got, "UNIT TESTING")
	}
}
