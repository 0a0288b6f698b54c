package betacode

import (
	"errors"
	"testing"
)

func TestToGreek_PlainWord(t *testing.T) {
	got, err := ToGreek("logos", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "λογος" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_FinalSigma(t *testing.T) {
	got, err := ToGreek("grafeis", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "γραφεις" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_SmoothAndRoughBreathing(t *testing.T) {
	got, err := ToGreek("a)/gios", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ἄγιος" {
		t.Fatalf("got %q", got)
	}

	got, err = ToGreek("o(/tos", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ὅτος" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_CircumflexAndIotaSubscript(t *testing.T) {
	got, err := ToGreek("a=|", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ᾷ" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_AsteriskRequiresTLG(t *testing.T) {
	_, err := ToGreek("*logos", ModeDefault)
	if !errors.Is(err, ErrUnexpectedCharacter) {
		t.Fatalf("expected ErrUnexpectedCharacter, got %v", err)
	}
}

func TestToGreek_TLGUppercase(t *testing.T) {
	got, err := ToGreek("*logos", ModeTLG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Λογος" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_TLGLetterSwap(t *testing.T) {
	// In TLG mode, 'c' is xi, not chi.
	got, err := ToGreek("c", ModeTLG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ξ" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_Elision(t *testing.T) {
	got, err := ToGreek("d'", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "δ᾽" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_InvalidAccentCombination(t *testing.T) {
	_, err := ToGreek("a)(", ModeDefault)
	if !errors.Is(err, ErrUnexpectedAccent) {
		t.Fatalf("expected ErrUnexpectedAccent, got %v", err)
	}
}

func TestToGreek_NonASCIIIsRejected(t *testing.T) {
	_, err := ToGreek("λ", ModeDefault)
	if !errors.Is(err, ErrUnexpectedCharacter) {
		t.Fatalf("expected ErrUnexpectedCharacter, got %v", err)
	}
}

func TestToGreek_StopsAtWhitespace(t *testing.T) {
	got, err := ToGreek("  logos kai", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "λογος" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_VForcesFinalSigma(t *testing.T) {
	got, err := ToGreek("Qeo/v", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Θεός" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_CaretCircumflex(t *testing.T) {
	got, err := ToGreek("u(mw^n", ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ὑμῶν" {
		t.Fatalf("got %q", got)
	}
}

func TestToGreek_TLGCaseComesFromAsteriskOnly(t *testing.T) {
	got, err := ToGreek("*QEO/S", ModeTLG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Θεός" {
		t.Fatalf("got %q", got)
	}
}
