// Package codec implements the dual text/binary on-disk format: a
// line-oriented, pipe-delimited human-editable text format, and a compact
// binary format with an embedded copy of three of the four search
// indexes.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loftafi/praxis-go/internal/lexicon"
	"github.com/loftafi/praxis-go/internal/parsing"
	"github.com/loftafi/praxis-go/internal/reference"
)

// ReadText parses the human-editable text format into an ordered list of
// Lexemes, each already owning its Forms. A line beginning with a
// non-whitespace byte opens a new Lexeme; a line beginning with space or
// tab is a Form belonging to the most recently opened Lexeme. Any
// malformed line is a hard error — the format has no silent-skip mode.
func ReadText(r io.Reader) ([]*lexicon.Lexeme, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lexemes []*lexicon.Lexeme
	var current *lexicon.Lexeme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if current == nil {
				return nil, fmt.Errorf("line %d: %w: form with no open lexeme", lineNo, ErrMalformedLine)
			}
			form, err := parseFormLine(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current.AddForm(form)
			continue
		}

		lex, err := parseLexemeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current = lex
		lexemes = append(lexemes, lex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lexemes, nil
}

func parseLexemeLine(line string) (*lexicon.Lexeme, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 12 {
		return nil, fmt.Errorf("%w: lexeme line needs 12 fields, got %d", ErrMalformedLine, len(fields))
	}
	word := fields[0]
	if word == "" {
		return nil, fmt.Errorf("%w: lexeme word is empty", ErrMalformedLine)
	}

	lang, ok := lexicon.LanguageFromCode(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, fields[1])
	}

	uid, err := parseUID(fields[2])
	if err != nil {
		return nil, err
	}

	pos, err := ParsePOSName(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPOSName, fields[3])
	}

	article, ok := lexicon.ArticleFromText(fields[4])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArticle, fields[4])
	}

	strongs, err := parseStrongsCSV(fields[6])
	if err != nil {
		return nil, err
	}

	glosses, err := parseGlossesField(fields[8])
	if err != nil {
		return nil, err
	}

	tags, err := parseTagsCSV(fields[10])
	if err != nil {
		return nil, err
	}

	lex := &lexicon.Lexeme{
		UID:            uid,
		Word:           word,
		Lang:           lang,
		Article:        article,
		POS:            parsing.Parsing(0).WithPOS(pos),
		Strongs:        strongs,
		Glosses:        glosses,
		GenitiveSuffix: fields[5],
		Root:           fields[7],
		Adjective:      fields[9],
		Tags:           tags,
		Note:           fields[11],
	}

	return lex, nil
}

func parseFormLine(line string) (*lexicon.Form, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 6 {
		return nil, fmt.Errorf("%w: form line needs 6 fields, got %d", ErrMalformedLine, len(fields))
	}
	word := fields[0]
	if word == "" {
		return nil, fmt.Errorf("%w: form word is empty", ErrMalformedLine)
	}

	p, err := parsing.ParseNative(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrMalformedLine, fields[1], err)
	}

	preferred, err := parseBoolField(fields[2])
	if err != nil {
		return nil, err
	}

	uid, err := parseUID(fields[3])
	if err != nil {
		return nil, err
	}

	glosses, err := parseGlossesField(fields[4])
	if err != nil {
		return nil, err
	}

	refs, err := parseReferencesField(fields[5])
	if err != nil {
		return nil, err
	}

	return &lexicon.Form{
		UID:        uid,
		Word:       word,
		Parsing:    p,
		Preferred:  preferred,
		Glosses:    glosses,
		References: refs,
	}, nil
}

func parseUID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n > 0xFFFFFF {
		return 0, fmt.Errorf("%w: bad uid %q", ErrMalformedLine, s)
	}
	return uint32(n), nil
}

func parseBoolField(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes":
		return true, nil
	case "false", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: bad boolean %q", ErrMalformedLine, s)
	}
}

func parseStrongsCSV(s string) ([]uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint16, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: bad strongs number %q", ErrMalformedLine, p)
		}
		out = append(out, uint16(n))
	}
	return out, nil
}

func parseTagsCSV(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > lexicon.MaxTags {
		return nil, lexicon.ErrTooManyTags
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, nil
}

// parseGlossesField parses "lang:entry[:entry]*[#lang:entry[:entry]*]*".
func parseGlossesField(s string) ([]lexicon.Gloss, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []lexicon.Gloss
	for _, group := range strings.Split(s, "#") {
		parts := strings.Split(group, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: bad gloss group %q", ErrMalformedLine, group)
		}
		lang, ok := lexicon.LanguageFromCode(parts[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, parts[0])
		}
		g := lexicon.Gloss{Lang: lang, Entries: append([]string(nil), parts[1:]...)}
		var err error
		out, err = lexicon.AddGloss(out, g)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseReferencesField parses a comma-separated "module#Book C:V W" list
// with reference.ReadList.
func parseReferencesField(s string) ([]reference.ModuleReference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	list, _, err := reference.ReadList(s)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// WriteText renders lexemes back into the text format.
func WriteText(w io.Writer, lexemes []*lexicon.Lexeme) error {
	bw := bufio.NewWriter(w)
	for _, lex := range lexemes {
		if _, err := bw.WriteString(formatLexemeLine(lex)); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
		for _, f := range lex.Forms {
			line, err := formatFormLine(f)
			if err != nil {
				return err
			}
			if _, err := bw.WriteString("  " + line + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func formatLexemeLine(lex *lexicon.Lexeme) string {
	fields := []string{
		lex.Word,
		lexicon.LanguageCode(lex.Lang),
		formatUID(lex.UID),
		FormatPOSName(lex.POS.POS()),
		lexicon.ArticleText(lex.Article),
		lex.GenitiveSuffix,
		formatStrongsCSV(lex.Strongs),
		lex.Root,
		formatGlossesField(lex.Glosses),
		lex.Adjective,
		strings.Join(lex.Tags, ","),
		lex.Note,
	}
	return strings.Join(fields, "|") + "|"
}

func formatFormLine(f *lexicon.Form) (string, error) {
	tag, err := parsing.FormatNative(f.Parsing)
	if err != nil {
		tag = parsing.IncompletePlaceholder
	}
	fields := []string{
		f.Word,
		tag,
		formatBool(f.Preferred),
		formatUID(f.UID),
		formatGlossesField(f.Glosses),
		formatReferencesField(f.References),
	}
	return strings.Join(fields, "|"), nil
}

func formatUID(uid uint32) string {
	if uid == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(uid), 10)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatStrongsCSV(s []uint16) string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, ",")
}

func formatGlossesField(glosses []lexicon.Gloss) string {
	groups := make([]string, len(glosses))
	for i, g := range glosses {
		groups[i] = lexicon.LanguageCode(g.Lang) + ":" + strings.Join(g.Entries, ":")
	}
	return strings.Join(groups, "#")
}

func formatReferencesField(refs []reference.ModuleReference) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = fmt.Sprintf("%s#%s %d:%d %d", r.Module, r.Book, r.Chapter, r.Verse, r.Word)
	}
	return strings.Join(parts, ",")
}
