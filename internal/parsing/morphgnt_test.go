package parsing

import "testing"

func TestParseMorphGNT_VerbPresentActiveIndicative2Plural(t *testing.T) {
	p, err := ParseMorphGNT("VPAI2P")
	if err != nil {
		t.Fatalf("ParseMorphGNT: %v", err)
	}
	if p.POS() != POSVerb || p.Tense() != TensePresent || p.Voice() != VoiceActive ||
		p.Mood() != MoodIndicative || p.Person() != PersonSecond || p.Number() != NumberPlural {
		t.Fatalf("unexpected parsing: %+v", p)
	}
}

func TestParseMorphGNT_NounNominativeSingularMasculine(t *testing.T) {
	p, err := ParseMorphGNT("NNSM")
	if err != nil {
		t.Fatalf("ParseMorphGNT: %v", err)
	}
	if p.POS() != POSNoun || p.Case() != CaseNominative || p.Number() != NumberSingular ||
		p.Gender() != GenderMasculine {
		t.Fatalf("unexpected parsing: %+v", p)
	}
}

func TestParseMorphGNT_ParticipleUsesCaseNumberGender(t *testing.T) {
	p, err := ParseMorphGNT("VPAPNSM")
	if err != nil {
		t.Fatalf("ParseMorphGNT: %v", err)
	}
	if p.Mood() != MoodParticiple || p.Case() != CaseNominative || p.Number() != NumberSingular ||
		p.Gender() != GenderMasculine {
		t.Fatalf("unexpected parsing: %+v", p)
	}
}

func TestParseMorphGNT_IncompleteVerbErrors(t *testing.T) {
	_, err := ParseMorphGNT("VP")
	if err == nil {
		t.Fatalf("expected an error for a truncated verb tag")
	}
}

func TestFormatMorphGNT_RoundTripsVerb(t *testing.T) {
	p := Parsing(0).WithPOS(POSVerb).WithTense(TensePresent).WithVoice(VoiceActive).
		WithMood(MoodIndicative).WithPerson(PersonSecond).WithNumber(NumberPlural)
	out, err := FormatMorphGNT(p)
	if err != nil {
		t.Fatalf("FormatMorphGNT: %v", err)
	}
	if out != "VPAI2P" {
		t.Fatalf("expected %q, got %q", "VPAI2P", out)
	}
}

func TestFormatMorphGNT_SecondTenseCollapsesToPrimaryLetter(t *testing.T) {
	p := Parsing(0).WithPOS(POSVerb).WithTense(TenseSecondAorist).WithVoice(VoiceActive).
		WithMood(MoodIndicative).WithPerson(PersonThird).WithNumber(NumberSingular)
	out, err := FormatMorphGNT(p)
	if err != nil {
		t.Fatalf("FormatMorphGNT: %v", err)
	}
	if out != "VAAI3S" {
		t.Fatalf("expected %q, got %q", "VAAI3S", out)
	}
}
