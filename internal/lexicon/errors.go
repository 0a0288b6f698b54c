package lexicon

import "errors"

// Sentinel errors returned while building or validating lexicon entities.
var (
	ErrTooManyTags            = errors.New("lexicon: a lexeme may carry at most 10 tags")
	ErrGlossSeparatorInEntry  = errors.New("lexicon: gloss entry contains a ':' or '#' separator")
	ErrDuplicateGlossLanguage = errors.New("lexicon: at most one gloss per language")
	ErrEmptyWord              = errors.New("lexicon: word must not be empty")
	ErrUnknownLanguageCode    = errors.New("lexicon: unknown language code")
	ErrUnknownArticle         = errors.New("lexicon: unknown article spelling")
	ErrUnknownPartOfSpeech    = errors.New("lexicon: unknown part-of-speech name")
)
