// Package dictionary ties the text/binary codec, the four search indexes
// and uid auto-assignment together behind a single facade: load a file,
// look words up, save it back out.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/loftafi/praxis-go/internal/codec"
	"github.com/loftafi/praxis-go/internal/lexicon"
	"github.com/loftafi/praxis-go/internal/parsing"
	"github.com/loftafi/praxis-go/internal/search"
	"github.com/loftafi/praxis-go/internal/uidgen"
)

// Dictionary is the in-process arena of Lexemes and Forms, plus the four
// search indexes over them (by headword, by inflected form, by gloss, by
// transliteration).
type Dictionary struct {
	lexemes []*lexicon.Lexeme

	byLexeme          *search.Index[*lexicon.Lexeme]
	byForm            *search.Index[*lexicon.Form]
	byGloss           *search.Index[*lexicon.Form]
	byTransliteration *search.Index[*lexicon.Form]

	logger        *logrus.Logger
	stopwords     map[string]bool
	maxResultSize int

	uids *uidgen.Generator
	seen map[uint32]bool
}

// Option configures a Dictionary at construction time.
type Option func(*Dictionary)

// WithLogger overrides the logger used for load/save diagnostics. The
// default is logrus.StandardLogger().
func WithLogger(logger *logrus.Logger) Option {
	return func(d *Dictionary) { d.logger = logger }
}

// WithStopwords sets the set of keywords (lowercase, unaccented) that are
// never populated as partial-match prefix entries.
func WithStopwords(stopwords map[string]bool) Option {
	return func(d *Dictionary) { d.stopwords = stopwords }
}

// WithMaxResultSize stores n on the Dictionary. No method reads the stored
// value: lookups, Stats and SaveBinary return the same results whatever n
// is.
func WithMaxResultSize(n int) Option {
	return func(d *Dictionary) { d.maxResultSize = n }
}

func newDictionary(opts ...Option) *Dictionary {
	d := &Dictionary{
		logger: logrus.StandardLogger(),
		uids:   uidgen.New(uint64(time.Now().UnixNano())),
		seen:   make(map[uint32]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.byLexeme = search.NewIndex[*lexicon.Lexeme](lexicon.LexemeOrder, d.stopwords)
	d.byForm = search.NewIndex[*lexicon.Form](lexicon.FormOrder, d.stopwords)
	d.byGloss = search.NewIndex[*lexicon.Form](lexicon.FormOrder, d.stopwords)
	d.byTransliteration = search.NewIndex[*lexicon.Form](lexicon.FormOrder, d.stopwords)
	return d
}

// New builds an empty Dictionary, ready to accept lexemes via Add.
func New(opts ...Option) *Dictionary {
	return newDictionary(opts...)
}

// Add inserts a lexeme (and its forms) into the dictionary, assigning
// uids to the lexeme or any of its forms that do not already have one.
// The indexes are left unsorted; call Sort before reading ranked results.
func (d *Dictionary) Add(lex *lexicon.Lexeme) error {
	d.assignUID(&lex.UID)
	for _, f := range lex.Forms {
		d.assignUID(&f.UID)
	}

	d.lexemes = append(d.lexemes, lex)
	if err := d.byLexeme.Add(lex.Word, lex); err != nil {
		return fmt.Errorf("index lexeme %q: %w", lex.Word, err)
	}
	for _, f := range lex.Forms {
		if err := d.indexForm(f); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dictionary) indexForm(f *lexicon.Form) error {
	if err := d.byForm.Add(f.Word, f); err != nil {
		return fmt.Errorf("index form %q: %w", f.Word, err)
	}
	for _, tok := range glossTokens(f.Glosses) {
		if err := d.byGloss.Add(tok, f); err != nil {
			d.logger.WithField("gloss", tok).Warn("skipping unindexable gloss token")
			continue
		}
	}
	translit := parsing.Transliterate(f.Word, false)
	if translit != "" {
		if err := d.byTransliteration.Add(translit, f); err != nil {
			d.logger.WithField("word", f.Word).Warn("skipping unindexable transliteration")
		}
	}
	return nil
}

// glossTokens tokenizes every gloss entry (across every language) into
// the individual words byGloss stores Forms under, using UAX #29 word
// boundaries rather than a hand-rolled whitespace split (so "the Lord's"
// yields "the" and "Lord's"; segments with no letter, such as spaces and
// punctuation, are dropped). Repeated tokens are kept once.
func glossTokens(glosses []lexicon.Gloss) []string {
	var tokens []string
	for _, g := range glosses {
		for _, entry := range g.Entries {
			seg := words.FromString(entry)
			for seg.Next() {
				tok := seg.Value()
				if tok == "" || !hasLetter(tok) {
					continue
				}
				tokens = append(tokens, tok)
			}
		}
	}
	return lo.Uniq(tokens)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x80 {
			return true
		}
	}
	return false
}

// assignUID fills in *uid with a freshly generated 24-bit value if it is
// currently 0, retrying against the set of uids already seen by this
// Dictionary so that auto-assigned and file-supplied uids never collide.
func (d *Dictionary) assignUID(uid *uint32) {
	if *uid != 0 {
		d.seen[*uid] = true
		return
	}
	assigned := d.uids.Assign(func(candidate uint32) bool { return d.seen[candidate] })
	d.seen[assigned] = true
	*uid = assigned
}

// Sort orders every bucket of every index. Call this once after loading
// or after a batch of Add calls, before relying on result ordering.
func (d *Dictionary) Sort() {
	d.byLexeme.Sort()
	d.byForm.Sort()
	d.byGloss.Sort()
	d.byTransliteration.Sort()
}

// Lexemes returns every lexeme in the dictionary, in load/insertion order.
func (d *Dictionary) Lexemes() []*lexicon.Lexeme { return d.lexemes }

// ByLexeme looks query up in the headword index.
func (d *Dictionary) ByLexeme(query string) (*search.Result[*lexicon.Lexeme], bool) {
	return d.byLexeme.Lookup(query)
}

// ByForm looks query up in the inflected-form index.
func (d *Dictionary) ByForm(query string) (*search.Result[*lexicon.Form], bool) {
	return d.byForm.Lookup(query)
}

// ByGloss looks query up in the gloss-token index.
func (d *Dictionary) ByGloss(query string) (*search.Result[*lexicon.Form], bool) {
	return d.byGloss.Lookup(query)
}

// ByTransliteration looks a Latin-script query up in the transliteration
// index.
func (d *Dictionary) ByTransliteration(query string) (*search.Result[*lexicon.Form], bool) {
	return d.byTransliteration.Lookup(query)
}

// Stats is a read-only summary of a Dictionary's contents.
type Stats struct {
	LexemeCount            int
	FormCount              int
	ByFormKeywords         int
	ByGlossKeywords        int
	ByTransliterationKeywords int
}

// Stats summarizes the dictionary's size, for the CLI stats subcommand
// and post-load smoke checks.
func (d *Dictionary) Stats() Stats {
	formCount := 0
	for _, lex := range d.lexemes {
		formCount += len(lex.Forms)
	}
	return Stats{
		LexemeCount:               len(d.lexemes),
		FormCount:                 formCount,
		ByFormKeywords:            d.byForm.Len(),
		ByGlossKeywords:           d.byGloss.Len(),
		ByTransliterationKeywords: d.byTransliteration.Len(),
	}
}

// LoadText reads the text format from r into a new Dictionary, indexing
// and sorting it before returning.
func LoadText(r io.Reader, opts ...Option) (*Dictionary, error) {
	lexemes, err := codec.ReadText(r)
	if err != nil {
		return nil, err
	}
	return fromLexemes(lexemes, opts...)
}

// LoadBinary reads the binary format from r into a new Dictionary. Form
// references stored in the binary search indexes that do not
// resolve to a loaded uid are logged and skipped, not treated as fatal.
func LoadBinary(r io.Reader, opts ...Option) (*Dictionary, error) {
	lexemes, raw, err := codec.ReadBinary(r)
	if err != nil {
		return nil, err
	}
	d, err := fromLexemes(lexemes, opts...)
	if err != nil {
		return nil, err
	}

	formsByUID := make(map[uint32]*lexicon.Form)
	for _, lex := range lexemes {
		for _, f := range lex.Forms {
			formsByUID[f.UID] = f
		}
	}
	d.byForm = rehydrateIndex(d, raw.ByForm, formsByUID, "by_form")
	d.byGloss = rehydrateIndex(d, raw.ByGloss, formsByUID, "by_gloss")
	d.byTransliteration = rehydrateIndex(d, raw.ByTransliteration, formsByUID, "by_transliteration")
	return d, nil
}

// rehydrateIndex rebuilds an Index from its raw (uid-only) on-disk form,
// placing each resolved Form back into the exact bucket and list it was
// exported from (RestoreBucket) rather than re-running Add's
// normalize-and-scatter pipeline, which would rescatter a form exported
// only into a partial-match bucket across every tier again. A uid that
// does not resolve against byUID is logged and skipped, not fatal.
func rehydrateIndex(d *Dictionary, raw codec.RawIndex, byUID map[uint32]*lexicon.Form, name string) *search.Index[*lexicon.Form] {
	idx := search.NewIndex[*lexicon.Form](lexicon.FormOrder, d.stopwords)
	resolve := func(uids []uint32) []*lexicon.Form {
		if len(uids) == 0 {
			return nil
		}
		out := make([]*lexicon.Form, 0, len(uids))
		for _, uid := range uids {
			f, ok := byUID[uid]
			if !ok {
				d.logger.WithFields(logrus.Fields{"index": name, "uid": uid}).Warn("skipping unresolved uid reference")
				continue
			}
			out = append(out, f)
		}
		return out
	}
	for _, bucket := range raw {
		idx.RestoreBucket(bucket.Keyword,
			resolve(bucket.ExactAccented),
			resolve(bucket.ExactUnaccented),
			resolve(bucket.PartialMatch))
	}
	idx.MarkSorted()
	return idx
}

func fromLexemes(lexemes []*lexicon.Lexeme, opts ...Option) (*Dictionary, error) {
	d := newDictionary(opts...)
	for _, lex := range lexemes {
		if err := d.Add(lex); err != nil {
			return nil, err
		}
	}
	d.Sort()
	return d, nil
}

// LoadFile opens path and loads it, auto-detecting text vs. binary format
// from the first two bytes.
func LoadFile(path string, opts ...Option) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == 2 && magic[0] == codec.BinaryMagic[0] && magic[1] == codec.BinaryMagic[1] {
		return LoadBinary(br, opts...)
	}
	return LoadText(br, opts...)
}

// SaveText writes the dictionary out in the text format.
func (d *Dictionary) SaveText(w io.Writer) error {
	return codec.WriteText(w, d.lexemes)
}

// SaveBinary writes the dictionary out in the binary format, including
// the by_form, by_gloss and by_transliteration indexes (by_lexeme is
// never persisted — it is trivially rebuilt from the lexeme list).
func (d *Dictionary) SaveBinary(w io.Writer) error {
	return codec.WriteBinary(w, d.lexemes, codec.BinaryIndexes{
		ByForm:            d.byForm,
		ByGloss:           d.byGloss,
		ByTransliteration: d.byTransliteration,
	})
}
