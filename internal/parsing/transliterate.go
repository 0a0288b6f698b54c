package parsing

import (
	"strings"
	"unicode"

	dom "github.com/loftafi/praxis-go/internal/unicode"
)

// greekTransliteration maps a bare (unaccented) lowercase Greek letter to
// its Latin transliteration. η and ω have two forms depending on
// allow_unicode: the macroned form here, the digraph-collapsed form is
// applied by Transliterate when allow_unicode is false.
var greekTransliteration = map[rune]string{
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "ē", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	dom.FinalSigma: "s", 'τ': "t", 'υ': "y", 'φ': "ph", 'χ': "ch",
	'ψ': "ps", 'ω': "ō",
}

// hebrewTransliteration maps a small set of Hebrew consonants that appear
// transliterated in Greek lexical entries (loanwords, proper names quoted
// in Hebrew script) to Latin.
var hebrewTransliteration = map[rune]string{
	'א': "'", 'ב': "b", 'ג': "g", 'ד': "d", 'ה': "h", 'ו': "w",
	'ז': "z", 'ח': "ch", 'ט': "t", 'י': "y", 'כ': "k", 'ל': "l",
	'מ': "m", 'נ': "n", 'ס': "s", 'ע': "'", 'פ': "p", 'צ': "tz",
	'ק': "q", 'ר': "r", 'ש': "sh", 'ת': "t",
}

// Transliterate converts a UTF-8 Greek (or Hebrew) word into its
// romanized spelling. When allowUnicode is false, η and ω collapse to the
// plain e/o digraphs used by ASCII-only output; diacritics are always
// dropped.
func Transliterate(word string, allowUnicode bool) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		if dom.IsGreek(r) {
			base := dom.NormaliseChar(r)
			upper := unicode.IsUpper(r) || r == dom.CapitalSigma
			latin, ok := greekTransliteration[base]
			if !ok {
				continue
			}
			if !allowUnicode {
				latin = collapseMacron(latin)
			}
			if upper {
				latin = strings.ToUpper(latin[:1]) + latin[1:]
			}
			b.WriteString(latin)
			continue
		}
		if latin, ok := hebrewTransliteration[r]; ok {
			b.WriteString(latin)
			continue
		}
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseMacron(s string) string {
	switch s {
	case "ē":
		return "e"
	case "ō":
		return "o"
	default:
		return s
	}
}
