package dictionary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loftafi/praxis-go/internal/lexicon"
)

func sampleText() string {
	return "λόγος|el|100000|Noun|ὁ|ου|3056||en:word:message||core|a common noun|\n" +
		"  λόγος|N-NSM|true|100001|en:word|byz#John 1:1 1\n" +
		"λόγοι|el|0|Noun|ὁ||||en:words|||a plural form|\n" +
		"  λόγοι|N-NPM|true|0|en:words|\n"
}

func TestLoadText_IndexesAndAssignsUIDs(t *testing.T) {
	dict, err := LoadText(strings.NewReader(sampleText()))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	stats := dict.Stats()
	if stats.LexemeCount != 2 || stats.FormCount != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	for _, lex := range dict.Lexemes() {
		if lex.UID == 0 {
			t.Fatalf("lexeme %q was not assigned a uid", lex.Word)
		}
		for _, f := range lex.Forms {
			if f.UID == 0 {
				t.Fatalf("form %q was not assigned a uid", f.Word)
			}
		}
	}

	result, ok := dict.ByForm("λόγος")
	if !ok {
		t.Fatalf("expected λόγος to be found in by_form")
	}
	if len(result.ExactAccented) == 0 {
		t.Fatalf("expected an exact-accented match for λόγος")
	}

	if _, ok := dict.ByGloss("word"); !ok {
		t.Fatalf("expected \"word\" to be found in by_gloss")
	}
}

func TestDictionary_TextBinaryRoundTrip(t *testing.T) {
	dict, err := LoadText(strings.NewReader(sampleText()))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	var binBuf bytes.Buffer
	if err := dict.SaveBinary(&binBuf); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	reloaded, err := LoadBinary(&binBuf)
	if err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}

	if reloaded.Stats().LexemeCount != dict.Stats().LexemeCount {
		t.Fatalf("lexeme count mismatch after binary round-trip: %+v vs %+v",
			reloaded.Stats(), dict.Stats())
	}

	result, ok := reloaded.ByForm("λόγος")
	if !ok || len(result.ExactAccented) == 0 {
		t.Fatalf("expected λόγος to survive the binary round-trip")
	}

	// The bucket contents and list membership must match exactly between
	// the original and reloaded indexes, including a partial-match-only
	// bucket like "λο" that should not re-scatter into ExactAccented.
	origBucket, ok := dict.byForm.Get("λο")
	if !ok {
		t.Fatalf("expected original index to hold a %q bucket", "λο")
	}
	reloadedBucket, ok := reloaded.byForm.Get("λο")
	if !ok {
		t.Fatalf("expected reloaded index to hold a %q bucket", "λο")
	}
	if len(reloadedBucket.ExactAccented) != len(origBucket.ExactAccented) ||
		len(reloadedBucket.ExactUnaccented) != len(origBucket.ExactUnaccented) ||
		len(reloadedBucket.PartialMatch) != len(origBucket.PartialMatch) {
		t.Fatalf("bucket %q membership changed across binary round-trip: got %+v, want %+v",
			"λο", reloadedBucket, origBucket)
	}
	if len(reloadedBucket.ExactAccented) != 0 || len(reloadedBucket.ExactUnaccented) != 0 {
		t.Fatalf("expected %q to remain partial-match-only after reload, got %+v", "λο", reloadedBucket)
	}
}

func TestDictionary_AddAssignsDistinctUIDs(t *testing.T) {
	dict := New()
	a := &lexicon.Lexeme{Word: "alpha", Lang: lexicon.LangGreek}
	b := &lexicon.Lexeme{Word: "beta", Lang: lexicon.LangGreek}
	if err := dict.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := dict.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.UID == 0 || b.UID == 0 || a.UID == b.UID {
		t.Fatalf("expected distinct non-zero uids, got %d and %d", a.UID, b.UID)
	}
}
