package parsing

import "errors"

// Sentinel errors returned by the tag-dialect parsers and formatters.
var (
	ErrInvalidParsing  = errors.New("parsing: invalid tag")
	ErrIncomplete      = errors.New("parsing: parsing value is incomplete for this dialect")
	ErrInvalidGender   = errors.New("parsing: invalid gender code")
	ErrInvalidLanguage = errors.New("parsing: invalid language code")
	ErrMissingField    = errors.New("parsing: missing field")
	ErrEmptyField      = errors.New("parsing: empty field")
)

// IncompletePlaceholder is what the default formatter renders in place of a
// tag that Format cannot produce (an internally inconsistent Parsing, e.g. a
// participle mood with no case/gender/number).
const IncompletePlaceholder = "[incomplete]"
