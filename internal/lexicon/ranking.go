package lexicon

import "github.com/loftafi/praxis-go/internal/collate"

// FormOrder implements the autocomplete ordering used by by_form, by_gloss
// and by_transliteration: shorter word (in bytes) first, then (on a length
// tie) the Form whose lexeme matches the bucket's own keyword, then more
// references, then more glosses, then preferred first, then domain order
// on the word, then ascending uid.
//
// hint is the SearchResult's own keyword: a tie between two forms whose
// surface words have the same byte length is broken in favour of the one whose lexeme
// headword equals the keyword the bucket is stored under, since that is
// the form a user typing that exact string is most likely looking for.
func FormOrder(a, b *Form, hint string) int {
	if len(a.Word) != len(b.Word) {
		if len(a.Word) < len(b.Word) {
			return -1
		}
		return 1
	}

	if hint != "" {
		aMatch := a.Lexeme != nil && a.Lexeme.Word == hint
		bMatch := b.Lexeme != nil && b.Lexeme.Word == hint
		if aMatch != bMatch {
			if aMatch {
				return -1
			}
			return 1
		}
	}

	if len(a.References) != len(b.References) {
		if len(a.References) > len(b.References) {
			return -1
		}
		return 1
	}

	if len(a.Glosses) != len(b.Glosses) {
		if len(a.Glosses) > len(b.Glosses) {
			return -1
		}
		return 1
	}

	if a.Preferred != b.Preferred {
		if a.Preferred {
			return -1
		}
		return 1
	}

	if ord := collate.Order(a.Word, b.Word); ord != collate.Equal {
		return int(ord) - int(collate.Equal)
	}

	switch {
	case a.UID < b.UID:
		return -1
	case a.UID > b.UID:
		return 1
	default:
		return 0
	}
}

// LexemeOrder implements lexeme ordering: domain order on the headword,
// then fewer glosses first, then ascending uid.
func LexemeOrder(a, b *Lexeme, _ string) int {
	if ord := collate.Order(a.Word, b.Word); ord != collate.Equal {
		return int(ord) - int(collate.Equal)
	}
	if len(a.Glosses) != len(b.Glosses) {
		if len(a.Glosses) < len(b.Glosses) {
			return -1
		}
		return 1
	}
	switch {
	case a.UID < b.UID:
		return -1
	case a.UID > b.UID:
		return 1
	default:
		return 0
	}
}
