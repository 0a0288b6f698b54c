package reference

import (
	"errors"
	"testing"
)

func TestParse_SimpleBook(t *testing.T) {
	ref, err := Parse("Rev 19:28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Book != "Revelation" || ref.Chapter != 19 || ref.Verse != 28 {
		t.Fatalf("unexpected reference: %+v", ref)
	}
}

func TestParse_MultiWordNumberedBook(t *testing.T) {
	ref, err := Parse("1 John 2:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Book != "1 John" || ref.Chapter != 2 || ref.Verse != 3 {
		t.Fatalf("unexpected reference: %+v", ref)
	}
}

func TestParse_AliasWithoutSpace(t *testing.T) {
	ref, err := Parse("1Th 3:4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Book != "1 Thessalonians" || ref.Chapter != 3 || ref.Verse != 4 {
		t.Fatalf("unexpected reference: %+v", ref)
	}
}

func TestParse_UnknownBook(t *testing.T) {
	_, err := Parse("Xyz 1:1")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestParse_MissingColon(t *testing.T) {
	_, err := Parse("Matt 3 4")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestReadList_CommaSeparatedModuleTuples(t *testing.T) {
	list, rest, err := ReadList("byz#Mark 1:2 3,kjtr#Mark 1:2 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" {
		t.Fatalf("expected no remainder, got %q", rest)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	for _, mr := range list {
		if mr.Module != "byzantine" && mr.Module != "textus-receptus" {
			t.Fatalf("unexpected module: %q", mr.Module)
		}
		if mr.Book != "Mark" || mr.Chapter != 1 || mr.Verse != 2 || mr.Word != 3 {
			t.Fatalf("unexpected entry: %+v", mr)
		}
	}
}

func TestReadList_StopsAtTerminator(t *testing.T) {
	list, rest, err := ReadList("byz#Mark 1:2 3|trailing garbage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list))
	}
	if rest != "trailing garbage" {
		t.Fatalf("unexpected remainder: %q", rest)
	}
}

func TestReadList_UnknownModule(t *testing.T) {
	_, _, err := ReadList("xyz#Mark 1:2")
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}
