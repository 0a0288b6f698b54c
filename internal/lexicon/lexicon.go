// Package lexicon defines the in-memory dictionary entities — Gloss, Form
// and Lexeme — and the ranking comparators the search indexes sort by.
package lexicon

import (
	"github.com/loftafi/praxis-go/internal/parsing"
	"github.com/loftafi/praxis-go/internal/reference"
)

// Language is the enumerated language of a Gloss or a Lexeme's headword.
type Language uint8

const (
	LangUnknown Language = iota
	LangHebrew
	LangGreek
	LangAramaic
	LangEnglish
	LangChinese
	LangSpanish
	LangKorean
	LangRussian
)

var languageCodes = map[Language]string{
	LangUnknown: "", LangHebrew: "he", LangGreek: "el", LangAramaic: "aaa",
	LangEnglish: "en", LangChinese: "zh", LangSpanish: "es",
	LangKorean: "ko", LangRussian: "ru",
}

var languageByCode = invertMap(languageCodes)

// LanguageCode returns the lowercase code used by the text file format.
func LanguageCode(l Language) string { return languageCodes[l] }

// LanguageFromCode resolves a text-format language code ("he", "el", ...).
func LanguageFromCode(code string) (Language, bool) {
	l, ok := languageByCode[code]
	return l, ok
}

func invertMap[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Article is the canonical Greek definite article carried by a Lexeme.
type Article uint8

const (
	ArticleNone Article = iota
	ArticleHo
	ArticleHe
	ArticleTo
	ArticleHoHe
	ArticleHoTo
	ArticleHoHeTo
)

var articleText = map[Article]string{
	ArticleNone: "", ArticleHo: "ὁ", ArticleHe: "ἡ", ArticleTo: "τό",
	ArticleHoHe: "ὁ ἡ", ArticleHoTo: "ὁ τό", ArticleHoHeTo: "ὁ ἡ τό",
}

var articleByText = invertMap(articleText)

// ArticleText returns the article's canonical Greek spelling.
func ArticleText(a Article) string { return articleText[a] }

// ArticleFromText resolves a canonical article spelling.
func ArticleFromText(s string) (Article, bool) {
	a, ok := articleByText[s]
	return a, ok
}

// MaxTags is the maximum number of tags a Lexeme may carry.
const MaxTags = 10

// Gloss is a translation entry: a language and an ordered list of short
// translation strings. No entry may contain ':' or '#' — the text codec
// uses them as the entry and gloss separators.
type Gloss struct {
	Lang    Language
	Entries []string
}

// Form is an inflected surface word belonging to a Lexeme.
type Form struct {
	UID        uint32 // 24-bit; 0 means "needs assignment"
	Word       string
	Parsing    parsing.Parsing
	Preferred  bool
	Incorrect  bool
	Glosses    []Gloss
	References []reference.ModuleReference
	Lexeme     *Lexeme // weak back-pointer, set on load
}

// UID32 satisfies search.Entity.
func (f *Form) UID32() uint32 { return f.UID }

// Lexeme is a dictionary headword.
type Lexeme struct {
	UID            uint32 // 24-bit; 0 means "needs assignment"
	Word           string
	Lang           Language
	Article        Article
	POS            parsing.Parsing
	Forms          []*Form
	Strongs        []uint16
	Glosses        []Gloss
	Root           string
	GenitiveSuffix string
	Adjective      string
	Note           string
	Tags           []string
}

// UID32 satisfies search.Entity.
func (l *Lexeme) UID32() uint32 { return l.UID }

// AddForm appends f to the Lexeme's form list and sets f's back-pointer.
func (l *Lexeme) AddForm(f *Form) {
	f.Lexeme = l
	l.Forms = append(l.Forms, f)
}

// AddTag appends a tag, enforcing the MaxTags bound.
func (l *Lexeme) AddTag(tag string) error {
	if len(l.Tags) >= MaxTags {
		return ErrTooManyTags
	}
	l.Tags = append(l.Tags, tag)
	return nil
}

// AddGloss appends g to glosses, enforcing at most one Gloss per language
// and rejecting entries containing the text codec's separator characters.
func AddGloss(glosses []Gloss, g Gloss) ([]Gloss, error) {
	for _, e := range g.Entries {
		if containsSeparator(e) {
			return nil, ErrGlossSeparatorInEntry
		}
	}
	for _, existing := range glosses {
		if existing.Lang == g.Lang {
			return nil, ErrDuplicateGlossLanguage
		}
	}
	return append(glosses, g), nil
}

func containsSeparator(s string) bool {
	for _, r := range s {
		if r == ':' || r == '#' {
			return true
		}
	}
	return false
}
