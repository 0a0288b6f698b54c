package parsing

import "testing"

func TestTransliterate_AllowUnicode(t *testing.T) {
	got := Transliterate("λόγος", true)
	if got != "logos" {
		t.Fatalf("got %q", got)
	}
}

func TestTransliterate_EtaOmegaMacron(t *testing.T) {
	got := Transliterate("ζωή", true)
	if got != "zōē" {
		t.Fatalf("got %q", got)
	}
}

func TestTransliterate_CollapseWithoutUnicode(t *testing.T) {
	got := Transliterate("ζωή", false)
	if got != "zoe" {
		t.Fatalf("got %q", got)
	}
}

func TestTransliterate_CapitalPreserved(t *testing.T) {
	got := Transliterate("Θεός", true)
	if got != "Theos" {
		t.Fatalf("got %q", got)
	}
}
