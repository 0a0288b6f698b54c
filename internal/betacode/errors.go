package betacode

import "errors"

// Sentinel errors returned by ToGreek.
var (
	ErrUnexpectedCharacter = errors.New("betacode: unexpected character")
	ErrUnexpectedAccent    = errors.New("betacode: accent combination has no precomposed letter")
)

// Mode selects which Beta-Code letter table ToGreek uses.
type Mode int

const (
	// ModeDefault is the common Beta-Code letter mapping (c and x both map to chi).
	ModeDefault Mode = iota
	// ModeTLG is the Thesaurus Linguae Graecae mapping, where asterisk
	// signals the next letter is capitalized and a handful of letters
	// (c, x) map differently than in ModeDefault.
	ModeTLG
)
