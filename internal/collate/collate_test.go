package collate

import "testing"

func TestOrder_CaseAndAccentInsensitive(t *testing.T) {
	if got := Order("Ἀννα", "Μᾶρκος"); got != Less {
		t.Fatalf("expected Less, got %v", got)
	}
}

func TestOrder_AccentOnlyDifference(t *testing.T) {
	if got := Order("ᾷβγ", "αβγ"); got != Equal {
		t.Fatalf("expected Equal, got %v", got)
	}
}

func TestOrder_Trichotomous(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"αβγ", "αβδ"},
		{"λογος", "λογοσ"},
		{"ΑΒΓ", "αβγ"},
	}
	for _, p := range pairs {
		fwd := Order(p.a, p.b)
		rev := Order(p.b, p.a)
		switch fwd {
		case Less:
			if rev != Greater {
				t.Fatalf("Order(%q,%q)=Less but reverse isn't Greater", p.a, p.b)
			}
		case Greater:
			if rev != Less {
				t.Fatalf("Order(%q,%q)=Greater but reverse isn't Less", p.a, p.b)
			}
		case Equal:
			if rev != Equal {
				t.Fatalf("Order(%q,%q)=Equal but reverse isn't Equal", p.a, p.b)
			}
		}
	}
}

func TestOrder_ShorterFirstOnPrefixTie(t *testing.T) {
	if got := Order("λογ", "λογος"); got != Less {
		t.Fatalf("expected Less, got %v", got)
	}
}
