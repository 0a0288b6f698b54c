// Package unicode implements the codepoint-level tables that every
// text-processing step in praxis-go is built on: accent stripping,
// breathing removal, grave-to-acute conversion, and the single-codepoint
// collation key used by the domain collator.
//
// Rather than hand-maintaining a table of several hundred precomposed
// polytonic Greek codepoints, these functions decompose a codepoint to its
// canonical base letter plus combining marks (golang.org/x/text/unicode/norm
// implements the Unicode canonical decomposition algorithm Greek Extended
// was designed around) and recompose only the marks that survive.
package unicode

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Combining marks used by polytonic Greek, identified by their canonical
// decomposition from Greek Extended (U+1F00-U+1FFF) and precomposed Greek
// and Coptic (U+0370-U+03FF) letters.
const (
	combAcute      rune = '́' // oxia / acute
	combGrave      rune = '̀' // varia / grave
	combCircumflex rune = '͂' // perispomeni / circumflex
	combSmooth     rune = '̓' // psili / smooth breathing
	combRough      rune = '̔' // dasia / rough breathing
	combIotaSub    rune = 'ͅ' // ypogegrammeni / iota subscript
	combDiaeresis  rune = '̈' // dialytika / diaeresis
)

const (
	// FinalSigma is the word-final lowercase sigma allograph.
	FinalSigma rune = 'ς'
	// Sigma is the medial lowercase sigma.
	Sigma rune = 'σ'
	// CapitalSigma is the uppercase sigma.
	CapitalSigma rune = 'Σ'
)

// IsGreek reports whether c falls in the Greek and Coptic block or the
// Greek Extended (polytonic) block.
func IsGreek(c rune) bool {
	return (c >= 0x0370 && c <= 0x03FF) || (c >= 0x1F00 && c <= 0x1FFF)
}

// decompose splits c into its canonical base rune and the set of combining
// marks attached to it. Non-decomposable runes return (c, nil).
func decompose(c rune) (base rune, marks map[rune]bool) {
	s := norm.NFD.String(string(c))
	marks = make(map[rune]bool)
	first := true
	for _, r := range s {
		if first {
			base = r
			first = false
			continue
		}
		marks[r] = true
	}
	return base, marks
}

// recompose canonically composes base with the given combining marks,
// reordering them per their Unicode combining class as needed.
func recompose(base rune, marks []rune) string {
	var b strings.Builder
	b.WriteRune(base)
	for _, m := range marks {
		b.WriteRune(m)
	}
	return norm.NFC.String(b.String())
}

// Unaccent strips accents and breathings from c, returning the UTF-8 bytes
// of the lowercase bare Greek letter. Returns false for non-Greek
// codepoints.
func Unaccent(c rune) ([]byte, bool) {
	if !IsGreek(c) {
		return nil, false
	}
	base, _ := decompose(c)
	lower := unicode.ToLower(base)
	return []byte(string(lower)), true
}

// Lowercase lowercases Greek and ASCII letters while preserving any
// breathings and accents attached to the codepoint.
func Lowercase(c rune) ([]byte, bool) {
	if c >= 'A' && c <= 'Z' {
		return []byte{byte(c + 32)}, true
	}
	if !IsGreek(c) {
		return nil, false
	}
	base, marks := decompose(c)
	lower := unicode.ToLower(base)
	if len(marks) == 0 {
		return []byte(string(lower)), true
	}
	kept := make([]rune, 0, len(marks))
	for m := range marks {
		kept = append(kept, m)
	}
	return []byte(recompose(lower, kept)), true
}

// RemoveAccent strips only the acute, grave, circumflex and iota-subscript
// diacritics from c, keeping any breathing mark or diaeresis. Returns false
// when c carries none of those diacritics (i.e. c is not accented).
func RemoveAccent(c rune) ([]byte, bool) {
	if !IsGreek(c) {
		return nil, false
	}
	base, marks := decompose(c)
	if len(marks) == 0 {
		return nil, false
	}
	if !marks[combAcute] && !marks[combGrave] && !marks[combCircumflex] && !marks[combIotaSub] {
		return nil, false
	}
	lower := unicode.ToLower(base)
	var keep []rune
	for m := range marks {
		if m == combSmooth || m == combRough || m == combDiaeresis {
			keep = append(keep, m)
		}
	}
	if len(keep) == 0 {
		return []byte(string(lower)), true
	}
	return []byte(recompose(lower, keep)), true
}

// FixGrave maps a grave-accented vowel to its acute equivalent, preserving
// any other diacritics. Returns false when c does not carry a grave accent.
func FixGrave(c rune) ([]byte, bool) {
	if !IsGreek(c) {
		return nil, false
	}
	base, marks := decompose(c)
	if !marks[combGrave] {
		return nil, false
	}
	lower := unicode.ToLower(base)
	keep := make([]rune, 0, len(marks))
	for m := range marks {
		if m == combGrave {
			keep = append(keep, combAcute)
			continue
		}
		keep = append(keep, m)
	}
	return []byte(recompose(lower, keep)), true
}

// NormaliseChar computes the single-codepoint collation key for c:
// lowercased, fully unaccented (accents, breathings, iota subscript and
// diaeresis all dropped), with word-medial/final sigma folded to medial
// sigma, and ASCII A-Z lowercased.
func NormaliseChar(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	if !IsGreek(c) {
		return c
	}
	base, _ := decompose(c)
	lower := unicode.ToLower(base)
	if lower == FinalSigma {
		lower = Sigma
	}
	return lower
}
