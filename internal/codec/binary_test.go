package codec

import (
	"bytes"
	"testing"

	"github.com/loftafi/praxis-go/internal/lexicon"
	"github.com/loftafi/praxis-go/internal/parsing"
	"github.com/loftafi/praxis-go/internal/reference"
	"github.com/loftafi/praxis-go/internal/search"
)

func sampleLexeme() *lexicon.Lexeme {
	lex := &lexicon.Lexeme{
		UID:     12345,
		Word:    "λόγος",
		Lang:    lexicon.LangGreek,
		Article: lexicon.ArticleHo,
		POS:     parsing.Parsing(0).WithPOS(parsing.POSNoun),
		Strongs: []uint16{3056},
		Glosses: []lexicon.Gloss{{Lang: lexicon.LangEnglish, Entries: []string{"word", "message"}}},
		Tags:    []string{"core"},
	}
	form := &lexicon.Form{
		UID:       12346,
		Word:      "λόγος",
		Parsing:   parsing.Parsing(0).WithPOS(parsing.POSNoun),
		Preferred: true,
		Glosses:   []lexicon.Gloss{{Lang: lexicon.LangEnglish, Entries: []string{"word"}}},
		References: []reference.ModuleReference{
			{Module: "byzantine", Reference: reference.Reference{Book: "John", Chapter: 1, Verse: 1}, Word: 1},
		},
	}
	lex.AddForm(form)
	return lex
}

func TestWriteReadBinary_RoundTrip(t *testing.T) {
	lex := sampleLexeme()
	lexemes := []*lexicon.Lexeme{lex}

	byForm := search.NewIndex[*lexicon.Form](lexicon.FormOrder, nil)
	if err := byForm.Add(lex.Forms[0].Word, lex.Forms[0]); err != nil {
		t.Fatalf("Add: %v", err)
	}
	byForm.Sort()

	byGloss := search.NewIndex[*lexicon.Form](lexicon.FormOrder, nil)
	byTranslit := search.NewIndex[*lexicon.Form](lexicon.FormOrder, nil)

	var buf bytes.Buffer
	err := WriteBinary(&buf, lexemes, BinaryIndexes{
		ByForm:            byForm,
		ByGloss:           byGloss,
		ByTransliteration: byTranslit,
	})
	if err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	gotLexemes, raw, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if len(gotLexemes) != 1 {
		t.Fatalf("expected 1 lexeme, got %d", len(gotLexemes))
	}
	got := gotLexemes[0]
	if got.UID != lex.UID || got.Word != lex.Word || got.Lang != lex.Lang {
		t.Fatalf("lexeme mismatch: %+v", got)
	}
	if len(got.Forms) != 1 || got.Forms[0].Word != "λόγος" || !got.Forms[0].Preferred {
		t.Fatalf("form mismatch: %+v", got.Forms)
	}
	if len(got.Forms[0].References) != 1 {
		t.Fatalf("expected 1 reference, got %d", len(got.Forms[0].References))
	}
	ref := got.Forms[0].References[0]
	if ref.Module != "byzantine" || ref.Book != "John" || ref.Chapter != 1 || ref.Verse != 1 || ref.Word != 1 {
		t.Fatalf("reference mismatch: %+v", ref)
	}

	// "λόγος" (5 letters) yields 4 accented prefixes (λό, λόγ, λόγο, λόγος)
	// and 4 distinct unaccented prefixes (λο, λογ, λογο, λογος); the two
	// full-length entries double as the ExactAccented/ExactUnaccented
	// buckets, for 8 distinct keyword buckets in total.
	if len(raw.ByForm) != 8 {
		t.Fatalf("expected 8 by_form keyword buckets, got %d", len(raw.ByForm))
	}

	var partialOnly *RawUIDResult
	for i := range raw.ByForm {
		if raw.ByForm[i].Keyword == "λο" {
			partialOnly = &raw.ByForm[i]
		}
	}
	if partialOnly == nil {
		t.Fatalf("expected a partial-match-only bucket for prefix %q", "λο")
	}
	if len(partialOnly.ExactAccented) != 0 || len(partialOnly.ExactUnaccented) != 0 {
		t.Fatalf("expected prefix bucket %q to carry no exact entries, got %+v", "λο", partialOnly)
	}
	if len(partialOnly.PartialMatch) != 1 || partialOnly.PartialMatch[0] != lex.Forms[0].UID {
		t.Fatalf("unexpected partial-match entries for %q: %+v", "λο", partialOnly.PartialMatch)
	}
}

func TestReadBinary_BadMagic(t *testing.T) {
	_, _, err := ReadBinary(bytes.NewReader([]byte{1, 2, 3}))
	if err != ErrBadMagic {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestReadBinary_Truncated(t *testing.T) {
	_, _, err := ReadBinary(bytes.NewReader(BinaryMagic[:]))
	if err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
