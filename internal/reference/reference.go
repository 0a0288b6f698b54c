// Package reference parses Scripture references such as "Matt 3:4" and
// "1 John 2:3", and module-qualified reference lists such as
// "byz#Mark 1:2 3,kjtr#Mark 1:2 3".
package reference

import (
	"strconv"
	"strings"
)

// Reference identifies a single verse: a canonical book name, chapter and
// verse.
type Reference struct {
	Book    string
	Chapter uint16
	Verse   uint16
}

// ModuleReference pairs a Reference with the text module it was read
// against (e.g. "byzantine", "kjtr") and the 1-based index of a specific
// word within the verse, as used by read_reference_list's
// "module#Book C:V W" tuples. Word is 0 when the tuple names the whole
// verse with no word index.
type ModuleReference struct {
	Module string
	Reference
	Word uint16
}

type bookEntry struct {
	canonical string
	aliases   []string
}

// bookTable lists the 27 New Testament books with their common
// abbreviations. Lookup is case-insensitive.
var bookTable = []bookEntry{
	{"Matthew", []string{"matt", "mt", "matthew"}},
	{"Mark", []string{"mark", "mk", "mrk"}},
	{"Luke", []string{"luke", "lk", "luk"}},
	{"John", []string{"john", "jn", "jhn"}},
	{"Acts", []string{"acts", "act"}},
	{"Romans", []string{"rom", "romans"}},
	{"1 Corinthians", []string{"1cor", "1co", "1corinthians"}},
	{"2 Corinthians", []string{"2cor", "2co", "2corinthians"}},
	{"Galatians", []string{"gal", "galatians"}},
	{"Ephesians", []string{"eph", "ephesians"}},
	{"Philippians", []string{"phil", "php", "philippians"}},
	{"Colossians", []string{"col", "colossians"}},
	{"1 Thessalonians", []string{"1th", "1thess", "1thessalonians"}},
	{"2 Thessalonians", []string{"2th", "2thess", "2thessalonians"}},
	{"1 Timothy", []string{"1tim", "1ti", "1timothy"}},
	{"2 Timothy", []string{"2tim", "2ti", "2timothy"}},
	{"Titus", []string{"titus", "tit"}},
	{"Philemon", []string{"phlm", "philemon"}},
	{"Hebrews", []string{"heb", "hebrews"}},
	{"James", []string{"jas", "james"}},
	{"1 Peter", []string{"1pet", "1pe", "1peter"}},
	{"2 Peter", []string{"2pet", "2pe", "2peter"}},
	{"1 John", []string{"1john", "1jn", "1jo"}},
	{"2 John", []string{"2john", "2jn", "2jo"}},
	{"3 John", []string{"3john", "3jn", "3jo"}},
	{"Jude", []string{"jude", "jud"}},
	{"Revelation", []string{"rev", "revelation", "apocalypse", "apoc"}},
}

var bookByAlias = buildBookAliasTable()

func buildBookAliasTable() map[string]string {
	m := make(map[string]string)
	for _, e := range bookTable {
		for _, a := range e.aliases {
			m[a] = e.canonical
		}
	}
	return m
}

type moduleEntry struct {
	canonical string
	aliases   []string
}

// moduleTable lists the text modules read_reference_list's module prefix
// can select.
var moduleTable = []moduleEntry{
	{"byzantine", []string{"byzantine", "byz"}},
	{"textus-receptus", []string{"tr", "kjtr", "textusreceptus"}},
	{"westcott-hort", []string{"wh", "westcotthort"}},
	{"nestle-aland", []string{"na", "nestlealand"}},
	{"sblgnt", []string{"sbl", "sblgnt"}},
}

var moduleByAlias = buildModuleAliasTable()

func buildModuleAliasTable() map[string]string {
	m := make(map[string]string)
	for _, e := range moduleTable {
		for _, a := range e.aliases {
			m[a] = e.canonical
		}
	}
	return m
}

// BookIndex returns the stable numeric index of a canonical book name, for
// use by the binary codec. ok is false for a name not in bookTable.
func BookIndex(canonical string) (uint16, bool) {
	for i, e := range bookTable {
		if e.canonical == canonical {
			return uint16(i), true
		}
	}
	return 0, false
}

// BookByIndex is the inverse of BookIndex.
func BookByIndex(idx uint16) (string, bool) {
	if int(idx) >= len(bookTable) {
		return "", false
	}
	return bookTable[idx].canonical, true
}

// ModuleIndex returns the stable numeric index of a canonical module name,
// for use by the binary codec.
func ModuleIndex(canonical string) (uint16, bool) {
	for i, e := range moduleTable {
		if e.canonical == canonical {
			return uint16(i), true
		}
	}
	return 0, false
}

// ModuleByIndex is the inverse of ModuleIndex.
func ModuleByIndex(idx uint16) (string, bool) {
	if int(idx) >= len(moduleTable) {
		return "", false
	}
	return moduleTable[idx].canonical, true
}

func lookupBook(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := bookByAlias[key]; ok {
		return canonical, true
	}
	canonical, ok := bookByAlias[strings.ReplaceAll(key, " ", "")]
	return canonical, ok
}

func lookupModule(name string) (string, bool) {
	canonical, ok := moduleByAlias[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Parse parses a single reference such as "Matt 3:4", "1 John 2:3" or
// "Rev 19:28". The book name may be multiple words and may start with a
// leading number (1, 2, 3 John/Corinthians/...).
func Parse(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	colon := strings.LastIndex(s, ":")
	if colon < 0 {
		return Reference{}, ErrInvalidReference
	}
	verseStr := s[colon+1:]
	head := strings.TrimSpace(s[:colon])

	lastSpace := strings.LastIndex(head, " ")
	if lastSpace < 0 {
		return Reference{}, ErrInvalidReference
	}
	bookPart := head[:lastSpace]
	chapterStr := head[lastSpace+1:]

	book, ok := lookupBook(bookPart)
	if !ok {
		return Reference{}, ErrInvalidReference
	}
	chapter, err := parseU16(chapterStr)
	if err != nil {
		return Reference{}, ErrInvalidReference
	}
	verse, err := parseU16(verseStr)
	if err != nil {
		return Reference{}, ErrInvalidReference
	}
	return Reference{Book: book, Chapter: chapter, Verse: verse}, nil
}

func parseU16(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, ErrInvalidReference
	}
	return uint16(n), nil
}

// ReadList parses a comma-separated list of module-qualified references,
// "module#Book C:V" tuples, stopping at the first '|', newline, NUL byte
// or end of input. It returns the list and the remainder of s following
// the terminator (or "" if none was found).
func ReadList(s string) ([]ModuleReference, string, error) {
	end := strings.IndexAny(s, "|\x00\n")
	body := s
	rest := ""
	if end >= 0 {
		body = s[:end]
		rest = s[end+1:]
	}

	var out []ModuleReference
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		hash := strings.Index(item, "#")
		if hash < 0 {
			return nil, "", ErrInvalidReference
		}
		moduleName, refStr := item[:hash], item[hash+1:]
		module, ok := lookupModule(moduleName)
		if !ok {
			return nil, "", ErrInvalidReference
		}

		refStr = strings.TrimSpace(refStr)
		var word uint16
		if colon := strings.LastIndex(refStr, ":"); colon >= 0 {
			// The verse number and a trailing word index are both
			// space-delimited after the colon: "1:2 3" -> verse 2, word 3.
			tail := refStr[colon+1:]
			if sp := strings.IndexByte(tail, ' '); sp >= 0 {
				w, err := parseU16(tail[sp+1:])
				if err != nil {
					return nil, "", err
				}
				word = w
				refStr = refStr[:colon+1+sp]
			}
		}

		ref, err := Parse(refStr)
		if err != nil {
			return nil, "", err
		}
		out = append(out, ModuleReference{Module: module, Reference: ref, Word: word})
	}
	return out, rest, nil
}
