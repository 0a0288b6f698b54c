// Package normalize turns a raw Greek (or mixed-script) word into the
// accented-normalized form, the unaccented form, and — for index insertion —
// the bag of prefix keywords an autocomplete search stores it under.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	dom "github.com/loftafi/praxis-go/internal/unicode"
)

// Result is the output of Normalise: the accented-normalized and unaccented
// forms of a word.
type Result struct {
	Accented   string
	Unaccented string
}

// KeywordResult is the output of Keywords: Result plus the prefix keywords
// derived from it.
type KeywordResult struct {
	Accented   string
	Unaccented string
	Keywords   []string
}

// Normalise computes the accented-normalized and unaccented forms of word.
func Normalise(word string) (Result, error) {
	accented, unaccented, _, err := run(word, false)
	if err != nil {
		return Result{}, err
	}
	return Result{Accented: accented, Unaccented: unaccented}, nil
}

// Keywords computes Normalise's output plus the set of prefixes an
// autocomplete index should store the word under.
func Keywords(word string) (KeywordResult, error) {
	accented, unaccented, keywords, err := run(word, true)
	if err != nil {
		return KeywordResult{}, err
	}
	return KeywordResult{Accented: accented, Unaccented: unaccented, Keywords: keywords}, nil
}

func run(word string, wantKeywords bool) (accented, unaccented string, keywords []string, err error) {
	if !utf8.ValidString(word) {
		return "", "", nil, ErrInvalidUTF8
	}
	if len(word) >= MaxWordBytes {
		return "", "", nil, ErrWordTooLong
	}

	var accB, unaccB strings.Builder
	sawAccent := false
	total := len(word)
	pos := 0

	for _, c := range word {
		n := utf8.RuneLen(c)
		isFinal := pos+n == total
		pos += n

		if unicode.IsSpace(c) {
			sawAccent = false
		}

		writeUnaccented(&unaccB, c)
		sawAccent = writeAccented(&accB, c, isFinal, sawAccent)
	}

	accented = accB.String()
	unaccented = unaccB.String()
	if wantKeywords {
		keywords = collectKeywords(accented, unaccented)
	}
	return accented, unaccented, keywords, nil
}

func writeUnaccented(b *strings.Builder, c rune) {
	if bytes, ok := dom.Unaccent(c); ok {
		b.Write(bytes)
		return
	}
	if bytes, ok := dom.Lowercase(c); ok {
		b.Write(bytes)
		return
	}
	b.WriteRune(c)
}

// writeAccented appends c's contribution to the accented accumulator and
// returns the updated saw-accent state.
func writeAccented(b *strings.Builder, c rune, isFinal, sawAccent bool) bool {
	if bytes, ok := dom.RemoveAccent(c); ok {
		if sawAccent {
			b.Write(bytes)
			return sawAccent
		}
		if fixed, ok := dom.FixGrave(c); ok {
			b.Write(fixed)
		} else if lower, ok := dom.Lowercase(c); ok {
			b.Write(lower)
		} else {
			b.WriteRune(c)
		}
		return true
	}

	if isSigma(c) && isFinal {
		b.WriteRune(dom.FinalSigma)
		return sawAccent
	}

	if lower, ok := dom.Lowercase(c); ok {
		b.Write(lower)
	} else {
		b.WriteRune(c)
	}
	return sawAccent
}

func isSigma(c rune) bool {
	return c == dom.Sigma || c == dom.CapitalSigma || c == dom.FinalSigma
}

func collectKeywords(accented, unaccented string) []string {
	var out []string
	out = appendPrefixes(out, accented)
	if unaccented != accented {
		out = appendPrefixes(out, unaccented)
	}
	return out
}

func appendPrefixes(out []string, s string) []string {
	runes := []rune(s)
	limit := len(runes)
	if limit > MaxKeywordChars {
		limit = MaxKeywordChars
	}
	for i := MinKeywordChars; i <= limit; i++ {
		out = append(out, string(runes[:i]))
	}
	return out
}
