package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadText_LexemeWithForm(t *testing.T) {
	input := "λόγος|el|100000|Noun|ὁ|ου|3056||en:word:message||core|a common noun|\n" +
		"  λόγος|N-NSM|true|100001|en:word|byz#John 1:1 1\n"

	lexemes, err := ReadText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if len(lexemes) != 1 {
		t.Fatalf("expected 1 lexeme, got %d", len(lexemes))
	}
	lex := lexemes[0]
	if lex.Word != "λόγος" || lex.UID != 100000 || lex.GenitiveSuffix != "ου" {
		t.Fatalf("unexpected lexeme: %+v", lex)
	}
	if len(lex.Strongs) != 1 || lex.Strongs[0] != 3056 {
		t.Fatalf("unexpected strongs: %v", lex.Strongs)
	}
	if len(lex.Forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(lex.Forms))
	}
	form := lex.Forms[0]
	if !form.Preferred || form.UID != 100001 {
		t.Fatalf("unexpected form: %+v", form)
	}
	if len(form.References) != 1 || form.References[0].Book != "John" || form.References[0].Word != 1 {
		t.Fatalf("unexpected references: %+v", form.References)
	}
	if form.Lexeme != lex {
		t.Fatalf("form's lexeme back-pointer not set")
	}
}

func TestReadText_FormWithNoOpenLexemeErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("  λόγος|N-NSM|true|100001|en:word|\n"))
	if err == nil {
		t.Fatalf("expected an error for an orphan form line")
	}
}

func TestReadText_MalformedLexemeLineErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("λόγος|el|100000|\n"))
	if err == nil {
		t.Fatalf("expected an error for a short lexeme line")
	}
}

func TestWriteText_RoundTrip(t *testing.T) {
	input := "λόγος|el|100000|Noun|ὁ|ου|3056||en:word:message||core|a common noun|\n" +
		"  λόγος|N-NSM|true|100001|en:word|byz#John 1:1 1\n"

	lexemes, err := ReadText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, lexemes); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	reparsed, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText of written output: %v", err)
	}
	if len(reparsed) != 1 || reparsed[0].Word != "λόγος" || reparsed[0].UID != 100000 {
		t.Fatalf("round-trip mismatch: %+v", reparsed)
	}
	if len(reparsed[0].Forms) != 1 || reparsed[0].Forms[0].UID != 100001 {
		t.Fatalf("round-trip form mismatch: %+v", reparsed[0].Forms)
	}
}
