package hangman

import (
	"errors"
	"reflect"
	"testing"
)

func testWords() WordSet {
	return NewWordSet("data", "science", "machine", "learning", "open", "source")
}

func TestValidateAnswerOK(t *testing.T) {
	tests := []string{
		"data science",
		"DATA SCIENCE",
		"  machine   learning ",
		"open",
		"",
	}

	for _, answer := range tests {
		if err := ValidateAnswer(answer, testWords()); err != nil {
			t.Errorf("ValidateAnswer(%q) = %v, want nil", answer, err)
		}
	}
}

func TestValidateAnswerReportsAllMissing(t *testing.T) {
	err := ValidateAnswer("notaword data xyzzy", testWords())
	if err == nil {
		t.Fatal("expected error for unknown tokens")
	}

	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("errors.Is(err, ErrInvalidToken) = false for %v", err)
	}

	var tokErr *InvalidTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected *InvalidTokenError, got %T", err)
	}

	want := []string{"notaword", "xyzzy"}
	if !reflect.DeepEqual(tokErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", tokErr.Missing, want)
	}
}

func TestValidateAnswerCaseFolding(t *testing.T) {
	err := ValidateAnswer("Open SOURCE Quantum", testWords())

	var tokErr *InvalidTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected *InvalidTokenError, got %v", err)
	}
	if len(tokErr.Missing) != 1 || tokErr.Missing[0] != "quantum" {
		t.Errorf("Missing = %v, want [quantum]", tokErr.Missing)
	}
}

func TestValidateAnswerKeepsDuplicates(t *testing.T) {
	err := ValidateAnswer("foo data foo", testWords())

	var tokErr *InvalidTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected *InvalidTokenError, got %v", err)
	}
	if !reflect.DeepEqual(tokErr.Missing, []string{"foo", "foo"}) {
		t.Errorf("Missing = %v, want [foo foo]", tokErr.Missing)
	}
}

func TestInvalidTokenErrorMessage(t *testing.T) {
	err := &InvalidTokenError{Missing: []string{"notaword", "xyzzy"}}
	want := "hangman: invalid tokens (not in dictionary): notaword, xyzzy"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWordSet(t *testing.T) {
	set := NewWordSet(" Data ", "science", "", "DATA")

	if len(set) != 2 {
		t.Errorf("len = %d, want 2", len(set))
	}
	if !set.Contains("DATA") || !set.Contains("Science") {
		t.Error("Contains should be case-insensitive")
	}
	if set.Contains("") {
		t.Error("blank token should not be stored")
	}
	if got := set.Sorted(); !reflect.DeepEqual(got, []string{"data", "science"}) {
		t.Errorf("Sorted() = %v", got)
	}
}
