package normalize

import "errors"

// Sentinel errors returned by Keywords and Normalise.
var (
	// ErrInvalidUTF8 is returned when the input is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("normalize: invalid utf-8")
	// ErrWordTooLong is returned when the input is 500 bytes or longer.
	ErrWordTooLong = errors.New("normalize: word too long")
)

// MaxWordBytes is the maximum accepted input length, in bytes.
const MaxWordBytes = 500

// MaxKeywordChars is the maximum codepoint length of a generated prefix
// keyword.
const MaxKeywordChars = 50

// MinKeywordChars is the minimum codepoint length of a generated prefix
// keyword.
const MinKeywordChars = 2
