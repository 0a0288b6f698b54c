package normalize

import (
	"strings"
	"testing"
)

func TestNormalise_AccentAndFinalSigma(t *testing.T) {
	res, err := Normalise("λόγος")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasSuffix(res.Accented, "ς") {
		t.Fatalf("expected accented form to end in final sigma, got %q", res.Accented)
	}
}

func TestNormalise_OneAccentPerWord(t *testing.T) {
	res, err := Normalise("ἀπόστολος")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	accentCount := 0
	for _, c := range res.Accented {
		switch c {
		case '́', '̀', '͂':
			accentCount++
		}
	}
	if accentCount > 1 {
		t.Fatalf("expected at most one surviving accent, got %d in %q", accentCount, res.Accented)
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	res, err := Normalise("Ἀπόστολος")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	again, err := Normalise(res.Accented)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if again.Accented != res.Accented {
		t.Fatalf("normalise not idempotent: %q != %q", again.Accented, res.Accented)
	}
}

func TestNormalise_WordTooLong(t *testing.T) {
	_, err := Normalise(strings.Repeat("a", MaxWordBytes))
	if err != ErrWordTooLong {
		t.Fatalf("expected ErrWordTooLong, got %v", err)
	}
}

func TestNormalise_InvalidUTF8(t *testing.T) {
	_, err := Normalise(string([]byte{0xff, 0xfe}))
	if err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestKeywords_ClosureAndBounds(t *testing.T) {
	res, err := Keywords("δράκων")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, kw := range res.Keywords {
		n := len([]rune(kw))
		if n < MinKeywordChars || n > MaxKeywordChars {
			t.Fatalf("keyword %q length %d out of bounds", kw, n)
		}
		if !strings.HasPrefix(res.Accented, kw) && !strings.HasPrefix(res.Unaccented, kw) {
			t.Fatalf("keyword %q is not a prefix of accented or unaccented form", kw)
		}
	}
}

func TestKeywords_NoDuplicateSourceWhenEqual(t *testing.T) {
	res, err := Keywords("και")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Accented == res.Unaccented {
		expected := len(res.Keywords)
		wantMax := len([]rune(res.Accented)) - MinKeywordChars + 1
		if expected > wantMax {
			t.Fatalf("expected keywords only from one buffer when accented==unaccented, got %d", expected)
		}
	}
}
